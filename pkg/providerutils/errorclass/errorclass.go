// Package errorclass maps provider-specific error signals onto the
// normalized types.ErrorCategory enum, grounded in the three places an
// OpenAI-compatible error can surface: a Chat Completions dialect error
// object (classified by substring, since OpenAI's own error "type" strings
// are not a closed set), a Responses dialect error event (classified by
// exact "type" string, since that field is a documented closed set), and a
// non-streaming HTTP error response (classified by status code).
package errorclass

import (
	"strings"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
)

// FromChatError classifies a Chat Completions dialect error payload. kind
// and message are the "type" and "message" fields of the error object;
// matching is substring-based because OpenAI has historically added new
// "type" values without notice.
func FromChatError(kind, message string) types.ErrorCategory {
	haystack := strings.ToLower(kind + " " + message)

	switch {
	case strings.Contains(haystack, "rate_limit"):
		return types.ErrorCategoryRateLimit
	case strings.Contains(haystack, "invalid_api_key"), strings.Contains(haystack, "authentication"):
		return types.ErrorCategoryAuth
	case strings.Contains(haystack, "content_filter"):
		return types.ErrorCategoryContentFilter
	case strings.Contains(haystack, "not_found"):
		return types.ErrorCategoryNotFound
	case strings.Contains(haystack, "invalid_request"):
		return types.ErrorCategoryInvalidArg
	case strings.Contains(haystack, "server_error"), strings.Contains(haystack, "internal"):
		return types.ErrorCategoryServer
	default:
		return types.ErrorCategoryUnknown
	}
}

// responsesTypeCategory is the closed set of exact "type" values the
// Responses dialect's "response.failed" / "error" events document. Unlike
// the Chat dialect, this error shape is stable, so matching is exact
// equality rather than substring.
var responsesTypeCategory = map[string]types.ErrorCategory{
	"authentication_error":  types.ErrorCategoryAuth,
	"rate_limit_error":      types.ErrorCategoryRateLimit,
	"invalid_request_error": types.ErrorCategoryInvalidArg,
	"server_error":          types.ErrorCategoryServer,
}

// FromResponsesError classifies a Responses dialect error event by its
// documented "type" field.
func FromResponsesError(errType string) types.ErrorCategory {
	if cat, ok := responsesTypeCategory[errType]; ok {
		return cat
	}
	return types.ErrorCategoryUnknown
}

// FromHTTPStatus classifies a non-streaming request failure by HTTP status
// code, for errors that occur before any event stream was ever established.
func FromHTTPStatus(status int) types.ErrorCategory {
	switch {
	case status == 401 || status == 403:
		return types.ErrorCategoryAuth
	case status == 404:
		return types.ErrorCategoryNotFound
	case status == 429:
		return types.ErrorCategoryRateLimit
	case status == 400 || status == 422:
		return types.ErrorCategoryInvalidArg
	case status >= 500:
		return types.ErrorCategoryServer
	case status == 0:
		return types.ErrorCategoryNetwork
	default:
		return types.ErrorCategoryUnknown
	}
}
