package streamcore

import (
	"github.com/bytedance/sonic"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
	"github.com/huxley-dev/llmstream/pkg/providerutils"
	"github.com/huxley-dev/llmstream/pkg/providerutils/errorclass"
	"github.com/huxley-dev/llmstream/pkg/providerutils/streaming"
)

type chatToolCallDelta struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatChunk struct {
	Model   string `json:"model"`
	Choices []struct {
		Delta struct {
			Content          string              `json:"content"`
			ReasoningContent string              `json:"reasoning_content"`
			ToolCalls        []chatToolCallDelta `json:"tool_calls"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
		CompletionTokensDetails *struct {
			ReasoningTokens int `json:"reasoning_tokens"`
		} `json:"completion_tokens_details"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// HandleChatRecord processes one SSE record of the Chat Completions
// dialect. It must not be called with the "[DONE]" sentinel; the caller
// checks streaming.IsChatDone and calls FinishChat instead.
//
// A record whose data is not valid JSON, or whose shape doesn't match what
// is expected, is silently dropped: it never terminates the stream and
// never produces a partial event.
func HandleChatRecord(ctx *Context, rec streaming.Record, emit func(types.StreamEvent)) {
	var chunk chatChunk
	if err := sonic.UnmarshalString(rec.Data, &chunk); err != nil {
		return
	}

	if chunk.Error != nil {
		emit(types.StreamEvent{
			Type:          types.EventError,
			ErrorCategory: errorclass.FromChatError(chunk.Error.Type, chunk.Error.Message),
			ErrorMessage:  chunk.Error.Message,
		})
		return
	}

	ctx.setModel(chunk.Model)
	maybeEmitStart(ctx, emit)

	if len(chunk.Choices) == 0 {
		recordChatUsage(ctx, chunk)
		return
	}
	choice := chunk.Choices[0]

	if choice.Delta.Content != "" {
		emit(types.StreamEvent{Type: types.EventTextDelta, Index: 0, Text: choice.Delta.Content})
	}
	if choice.Delta.ReasoningContent != "" {
		emit(types.StreamEvent{Type: types.EventThinkingDelta, Index: 0, Text: choice.Delta.ReasoningContent})
	}

	for _, tc := range choice.Delta.ToolCalls {
		if tc.ID != "" && tc.Index != ctx.toolCallIndex {
			maybeEndToolCall(ctx, emit)
		}
		if tc.ID != "" && tc.Function.Name != "" {
			startToolCall(ctx, tc.ID, tc.Function.Name, tc.Index, emit)
		}
		appendToolArgs(ctx, tc.Index, tc.Function.Arguments, emit)
	}

	if choice.FinishReason != nil {
		ctx.finishReason = providerutils.MapChatFinishReason(*choice.FinishReason)
	}

	recordChatUsage(ctx, chunk)
}

func recordChatUsage(ctx *Context, chunk chatChunk) {
	if chunk.Usage == nil {
		return
	}
	u := types.Usage{
		InputTokens:  chunk.Usage.PromptTokens,
		OutputTokens: chunk.Usage.CompletionTokens,
		TotalTokens:  chunk.Usage.TotalTokens,
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	if chunk.Usage.CompletionTokensDetails != nil {
		u.ThinkingTokens = chunk.Usage.CompletionTokensDetails.ReasoningTokens
	}
	ctx.usage = u
}

// FinishChat is called once the Chat Completions dialect's terminal
// "[DONE]" marker arrives. It closes any still-open tool call and emits the
// stream's single DONE event, overwriting the finish reason to TOOL_USE
// when a tool call was ever opened, since some providers never repeat a
// tool-calling finish_reason once streaming is done.
func FinishChat(ctx *Context, emit func(types.StreamEvent)) {
	hadToolCall := ctx.pendingToolCall != nil || ctx.inToolCall
	maybeEndToolCall(ctx, emit)

	if hadToolCall {
		ctx.finishReason = types.FinishReasonToolUse
	}

	emit(types.StreamEvent{
		Type:         types.EventDone,
		FinishReason: ctx.finishReason,
		Usage:        ctx.usage,
	})
}
