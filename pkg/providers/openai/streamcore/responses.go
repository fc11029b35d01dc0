package streamcore

import (
	"github.com/bytedance/sonic"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
	"github.com/huxley-dev/llmstream/pkg/providerutils"
	"github.com/huxley-dev/llmstream/pkg/providerutils/errorclass"
	"github.com/huxley-dev/llmstream/pkg/providerutils/streaming"
)

// HandleResponsesRecord processes one SSE record of the Responses dialect.
// Unlike Chat Completions, every event is named ("event:"), and the data
// payload's shape depends on that name. A record carrying an unrecognized
// event name, or a data payload that doesn't parse into the shape that
// name's handler expects, is silently dropped.
func HandleResponsesRecord(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	switch rec.Event {
	case "response.created":
		handleResponseCreated(ctx, rec, emit)
	case "response.output_item.added":
		handleOutputItemAdded(ctx, rec, emit)
	case "response.output_text.delta":
		handleOutputTextDelta(ctx, rec, emit)
	case "response.reasoning_summary_text.delta":
		handleReasoningDelta(ctx, rec, emit)
	case "response.function_call_arguments.delta":
		handleFunctionCallArgsDelta(ctx, rec, emit)
	case "response.function_call_arguments.done":
		// The arguments were already fully accumulated via preceding delta
		// events; this event carries nothing new.
	case "response.output_item.done":
		handleOutputItemDone(ctx, rec, emit)
	case "response.completed":
		handleResponseCompleted(ctx, rec, emit)
	case "response.failed", "error":
		handleResponseFailed(ctx, rec, emit)
	}
}

func handleResponseCreated(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		Response struct {
			Model string `json:"model"`
		} `json:"response"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	ctx.setModel(payload.Response.Model)
	maybeEmitStart(ctx, emit)
}

func handleOutputItemAdded(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		OutputIndex int `json:"output_index"`
		Item        struct {
			Type   string `json:"type"`
			CallID string `json:"call_id"`
			Name   string `json:"name"`
		} `json:"item"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	if payload.Item.Type != "function_call" {
		return
	}
	// Both call_id and name must be present before a tool call is opened and
	// START is emitted; a partial item is ignored rather than surfaced with
	// a missing identity.
	if payload.Item.CallID == "" || payload.Item.Name == "" {
		return
	}
	maybeEmitStart(ctx, emit)
	startToolCall(ctx, payload.Item.CallID, payload.Item.Name, payload.OutputIndex, emit)
}

func handleOutputTextDelta(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		Delta        string `json:"delta"`
		ContentIndex int    `json:"content_index"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	maybeEmitStart(ctx, emit)
	if payload.Delta != "" {
		emit(types.StreamEvent{Type: types.EventTextDelta, Index: payload.ContentIndex, Text: payload.Delta})
	}
}

func handleReasoningDelta(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		Delta        string `json:"delta"`
		SummaryIndex int    `json:"summary_index"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	maybeEmitStart(ctx, emit)
	if payload.Delta != "" {
		emit(types.StreamEvent{Type: types.EventThinkingDelta, Index: payload.SummaryIndex, Text: payload.Delta})
	}
}

func handleFunctionCallArgsDelta(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		OutputIndex *int   `json:"output_index"`
		Delta       string `json:"delta"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	if !ctx.inToolCall {
		return
	}
	outputIndex := ctx.toolCallIndex
	if payload.OutputIndex != nil {
		outputIndex = *payload.OutputIndex
	}
	// The wire may send an output_index that disagrees with the active tool
	// call; accumulate against the active call regardless, but pass the
	// wire's own index through on the emitted event rather than silently
	// dropping the delta or rewriting it to tool_call_index.
	appendToolArgs(ctx, outputIndex, payload.Delta, emit)
}

func handleOutputItemDone(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		OutputIndex int `json:"output_index"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	if !ctx.inToolCall || payload.OutputIndex != ctx.toolCallIndex {
		return
	}
	maybeEndToolCall(ctx, emit)
}

func handleResponseCompleted(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		Response struct {
			Status            string `json:"status"`
			IncompleteDetails *struct {
				Reason string `json:"reason"`
			} `json:"incomplete_details"`
			Usage *struct {
				InputTokens        int `json:"input_tokens"`
				OutputTokens       int `json:"output_tokens"`
				TotalTokens        int `json:"total_tokens"`
				OutputTokenDetails *struct {
					ReasoningTokens int `json:"reasoning_tokens"`
				} `json:"output_tokens_details"`
			} `json:"usage"`
		} `json:"response"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}

	maybeEndToolCall(ctx, emit)

	var incompleteReason string
	if payload.Response.IncompleteDetails != nil {
		incompleteReason = payload.Response.IncompleteDetails.Reason
	}
	ctx.finishReason = providerutils.MapResponsesStatus(payload.Response.Status, incompleteReason)
	if ctx.pendingToolCall != nil && ctx.finishReason == types.FinishReasonStop {
		ctx.finishReason = types.FinishReasonToolUse
	}

	if payload.Response.Usage != nil {
		u := types.Usage{
			InputTokens:  payload.Response.Usage.InputTokens,
			OutputTokens: payload.Response.Usage.OutputTokens,
			TotalTokens:  payload.Response.Usage.TotalTokens,
		}
		if u.TotalTokens == 0 {
			u.TotalTokens = u.InputTokens + u.OutputTokens
		}
		if payload.Response.Usage.OutputTokenDetails != nil {
			u.ThinkingTokens = payload.Response.Usage.OutputTokenDetails.ReasoningTokens
		}
		ctx.usage = u
	}

	emit(types.StreamEvent{
		Type:         types.EventDone,
		FinishReason: ctx.finishReason,
		Usage:        ctx.usage,
	})
}

func handleResponseFailed(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var payload struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Error   *struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := sonic.UnmarshalString(rec.Data, &payload); err != nil {
		return
	}
	errType, message := payload.Type, payload.Message
	if payload.Error != nil {
		errType, message = payload.Error.Type, payload.Error.Message
	}
	if message == "" {
		message = "Unknown error"
	}
	emit(types.StreamEvent{
		Type:          types.EventError,
		ErrorCategory: errorclass.FromResponsesError(errType),
		ErrorMessage:  message,
	})
}
