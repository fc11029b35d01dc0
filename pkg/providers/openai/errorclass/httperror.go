// Package errorclass classifies a non-streaming OpenAI request failure —
// one that happened before any SSE stream was ever established, so none of
// streamcore's dialect-aware error events apply.
package errorclass

import (
	"github.com/bytedance/sonic"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
	wireerrorclass "github.com/huxley-dev/llmstream/pkg/providerutils/errorclass"
)

type httpErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// MapHTTPError classifies a failed request by its HTTP status and response
// body. OpenAI's non-streaming error responses use the same
// {"error":{"type","message"}} envelope as the Chat dialect's inline error
// object, so a body that decodes into it is classified the same way
// (substring match on type+message); a body that doesn't decode, or decodes
// with no message, falls back to status-code classification alone. The
// returned message is the parsed error message, or a generic one derived
// from the status code when the body carried none.
func MapHTTPError(status int, body []byte) (types.ErrorCategory, string) {
	var parsed httpErrorBody
	if err := sonic.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		category := wireerrorclass.FromChatError(parsed.Error.Type, parsed.Error.Message)
		if category == types.ErrorCategoryUnknown {
			category = wireerrorclass.FromHTTPStatus(status)
		}
		return category, parsed.Error.Message
	}
	return wireerrorclass.FromHTTPStatus(status), genericMessage(status)
}

func genericMessage(status int) string {
	switch {
	case status == 401 || status == 403:
		return "authentication failed"
	case status == 404:
		return "model not found"
	case status == 429:
		return "rate limit exceeded"
	case status == 400 || status == 422:
		return "invalid request"
	case status >= 500:
		return "server error"
	case status == 0:
		return "network error"
	default:
		return "unknown error"
	}
}
