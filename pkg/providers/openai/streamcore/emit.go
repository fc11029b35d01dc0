package streamcore

import (
	"github.com/bytedance/sonic"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
)

// maybeEmitStart emits exactly one START event per stream, the first time
// it is called for that stream. Call after ctx.setModel so the model, if
// known on this record, rides along on the START event.
func maybeEmitStart(ctx *Context, emit func(types.StreamEvent)) {
	if ctx.started {
		return
	}
	ctx.started = true
	emit(types.StreamEvent{Type: types.EventStart, Model: ctx.model})
}

// startToolCall opens a new in-progress tool call, closing out any
// previously open one first (a dialect is never supposed to start a second
// tool call before ending the first, but providers have been known to skip
// the end marker on the last tool call before finishing the message).
func startToolCall(ctx *Context, id, name string, index int, emit func(types.StreamEvent)) {
	if ctx.inToolCall {
		maybeEndToolCall(ctx, emit)
	}
	ctx.inToolCall = true
	ctx.toolCallID = id
	ctx.toolName = name
	ctx.toolCallIndex = index
	ctx.toolArgs = ""
	emit(types.StreamEvent{
		Type:       types.EventToolCallStart,
		Index:      index,
		ToolCallID: id,
		ToolName:   name,
	})
}

// appendToolArgs accumulates a fragment of a tool call's arguments JSON and
// emits the corresponding TOOL_CALL_DELTA. index is the wire's own index for
// this delta, which the Responses dialect documents as not always matching
// the active tool call's index (see handleFunctionCallArgsDelta) — callers
// pass the wire value through rather than ctx.toolCallIndex so that quirk is
// preserved on the emitted event.
func appendToolArgs(ctx *Context, index int, delta string, emit func(types.StreamEvent)) {
	if !ctx.inToolCall || delta == "" {
		return
	}
	ctx.toolArgs += delta
	emit(types.StreamEvent{
		Type:           types.EventToolCallDelta,
		Index:          index,
		ToolCallID:     ctx.toolCallID,
		ArgumentsDelta: delta,
	})
}

// maybeEndToolCall closes the in-progress tool call, if any, decoding its
// accumulated arguments and emitting TOOL_CALL_DONE. The tool call's id,
// name, and accumulated arguments are deliberately left on ctx after this
// returns: the terminal Response builder reads them to produce the
// completed generation's TOOL_CALL content block, and the wire formats do
// not repeat them anywhere else.
func maybeEndToolCall(ctx *Context, emit func(types.StreamEvent)) {
	if !ctx.inToolCall {
		return
	}
	ctx.inToolCall = false

	var args map[string]interface{}
	_ = sonic.UnmarshalString(ctx.toolArgs, &args)

	ctx.pendingToolCall = &types.ToolCall{
		ID:           ctx.toolCallID,
		ToolName:     ctx.toolName,
		Arguments:    args,
		RawArguments: ctx.toolArgs,
	}

	emit(types.StreamEvent{
		Type:         types.EventToolCallDone,
		Index:        ctx.toolCallIndex,
		ToolCallID:   ctx.toolCallID,
		ToolName:     ctx.toolName,
		Arguments:    args,
		RawArguments: ctx.toolArgs,
	})
}
