package streamcore

import (
	"github.com/bytedance/sonic"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
)

// BuildResponse assembles the terminal, non-streaming Response for a
// completed stream from its accumulated Context. It never reconstructs
// streamed text into a TEXT content block — callers that want the full text
// must accumulate TEXT_DELTA events themselves — and holds at most one
// TOOL_CALL content block, since OpenAI's streaming dialects only ever
// leave one tool call pending across C5's lifecycle invariants.
//
// It uses ctx.pendingToolCall when TOOL_CALL_DONE has fired, and otherwise
// falls back to the current tool call identity on ctx (toolCallID,
// toolName): a stream that ends mid-tool-call, with no terminal event at
// all, still leaves toolCallID/toolName set and still surfaces a TOOL_CALL
// content block.
func BuildResponse(ctx *Context) types.Response {
	finishReason := ctx.finishReason
	var content []types.ContentBlock

	switch {
	case ctx.pendingToolCall != nil:
		finishReason = types.FinishReasonToolUse
		content = append(content, types.ContentBlock{
			Type:     types.ContentBlockToolCall,
			ToolCall: ctx.pendingToolCall,
		})
	case ctx.toolCallID != "" && ctx.toolName != "":
		finishReason = types.FinishReasonToolUse
		var args map[string]interface{}
		_ = sonic.UnmarshalString(ctx.toolArgs, &args)
		content = append(content, types.ContentBlock{
			Type: types.ContentBlockToolCall,
			ToolCall: &types.ToolCall{
				ID:           ctx.toolCallID,
				ToolName:     ctx.toolName,
				Arguments:    args,
				RawArguments: ctx.toolArgs,
			},
		})
	}

	return types.Response{
		Model:        ctx.model,
		Content:      content,
		FinishReason: finishReason,
		Usage:        ctx.usage,
	}
}
