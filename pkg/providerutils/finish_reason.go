package providerutils

import "github.com/huxley-dev/llmstream/pkg/provider/types"

// MapChatFinishReason maps a Chat Completions dialect finish_reason string
// to the normalized enum. Handles both the current ("tool_calls") and
// legacy ("function_call") values.
func MapChatFinishReason(reason string) types.FinishReason {
	switch reason {
	case "stop":
		return types.FinishReasonStop
	case "length":
		return types.FinishReasonLength
	case "tool_calls", "function_call":
		return types.FinishReasonToolUse
	case "content_filter":
		return types.FinishReasonContentFilter
	case "error":
		return types.FinishReasonError
	default:
		return types.FinishReasonUnknown
	}
}

// MapResponsesStatus maps a Responses dialect terminal response.completed
// event's status string to the normalized enum. incompleteReason is the
// response's incomplete_details.reason field, consulted only when status is
// "incomplete": a "content_filter" secondary reason overrides the default
// LENGTH mapping.
func MapResponsesStatus(status, incompleteReason string) types.FinishReason {
	switch status {
	case "completed":
		return types.FinishReasonStop
	case "cancelled":
		return types.FinishReasonStop
	case "incomplete":
		if incompleteReason == "content_filter" {
			return types.FinishReasonContentFilter
		}
		return types.FinishReasonLength
	case "failed":
		return types.FinishReasonError
	default:
		return types.FinishReasonUnknown
	}
}
