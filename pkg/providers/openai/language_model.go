package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	internalhttp "github.com/huxley-dev/llmstream/pkg/internal/http"
	"github.com/huxley-dev/llmstream/pkg/provider"
	providererrors "github.com/huxley-dev/llmstream/pkg/provider/errors"
	"github.com/huxley-dev/llmstream/pkg/provider/types"
	"github.com/huxley-dev/llmstream/pkg/providers/openai/errorclass"
	"github.com/huxley-dev/llmstream/pkg/providers/openai/streamcore"
)

// LanguageModel implements provider.LanguageModel for OpenAI, dispatching to
// whichever of the two streaming dialects the target model actually speaks.
type LanguageModel struct {
	provider *Provider
	modelID  string
}

// NewLanguageModel creates a new OpenAI language model.
func NewLanguageModel(p *Provider, modelID string) *LanguageModel {
	return &LanguageModel{provider: p, modelID: modelID}
}

func (m *LanguageModel) SpecificationVersion() string { return "v1" }
func (m *LanguageModel) Provider() string             { return "openai" }
func (m *LanguageModel) ModelID() string              { return m.modelID }

// SupportsTools reports whether the model supports tool calling. Every
// currently listed chat and reasoning model does.
func (m *LanguageModel) SupportsTools() bool { return true }

// dialect picks the wire dialect for the model: the Responses API dialect
// for the reasoning model families, Chat Completions for everything else.
func (m *LanguageModel) dialect() streamcore.Dialect {
	for _, prefix := range reasoningModelPrefixes {
		if strings.HasPrefix(m.modelID, prefix) {
			return streamcore.DialectResponses
		}
	}
	return streamcore.DialectChat
}

func (m *LanguageModel) endpointPath() string {
	if m.dialect() == streamcore.DialectResponses {
		return "/responses"
	}
	return "/chat/completions"
}

// DoStream issues a streaming generation request and synchronously emits a
// normalized types.StreamEvent for each record the model produces, on the
// caller's goroutine, in order, until the response body ends. Records that
// arrive after a DONE or ERROR event are still processed.
func (m *LanguageModel) DoStream(ctx context.Context, opts provider.GenerateOptions, onEvent func(types.StreamEvent)) error {
	reqBody := m.buildRequestBody(opts)

	httpResp, err := m.provider.client.DoStream(ctx, internalhttp.Request{
		Method:  http.MethodPost,
		Path:    m.endpointPath(),
		Body:    reqBody,
		Headers: mergeHeaders(map[string]string{"Accept": "text/event-stream"}, opts.Headers),
	})
	if err != nil {
		var statusErr *internalhttp.StatusError
		if errors.As(err, &statusErr) {
			category, message := errorclass.MapHTTPError(statusErr.StatusCode, statusErr.Body)
			return providererrors.NewProviderError("openai", statusErr.StatusCode, string(category), message, err)
		}
		return providererrors.NewStreamError("failed to open stream", err)
	}
	defer httpResp.Body.Close()

	_, err = streamcore.Run(ctx, m.provider.Tracer(), m.provider.Logger(), m.dialect(), m.modelID, httpResp.Body, onEvent)
	return err
}

func mergeHeaders(base, extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return base
	}
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// buildRequestBody assembles the JSON request body for either dialect. The
// two dialects share the same message/tool shape on the request side; they
// diverge only in how the response streams back.
func (m *LanguageModel) buildRequestBody(opts provider.GenerateOptions) map[string]interface{} {
	body := map[string]interface{}{
		"model":  m.modelID,
		"stream": true,
	}

	messages := toOpenAIMessages(opts.Prompt)
	if opts.Prompt.System != "" {
		messages = append([]map[string]interface{}{{
			"role":    "system",
			"content": opts.Prompt.System,
		}}, messages...)
	}
	body["messages"] = messages

	if opts.Temperature != nil {
		body["temperature"] = *opts.Temperature
	}
	if opts.MaxTokens != nil {
		body["max_tokens"] = *opts.MaxTokens
	}
	if opts.TopP != nil {
		body["top_p"] = *opts.TopP
	}

	if len(opts.Tools) > 0 {
		tools := make([]map[string]interface{}, len(opts.Tools))
		for i, t := range opts.Tools {
			tools[i] = map[string]interface{}{
				"type": "function",
				"function": map[string]interface{}{
					"name":        t.Name,
					"description": t.Description,
					"parameters":  t.Parameters,
				},
			}
		}
		body["tools"] = tools
	}

	return body
}

// toOpenAIMessages converts a Prompt to the wire message array. A bare-text
// prompt becomes a single user message.
func toOpenAIMessages(p types.Prompt) []map[string]interface{} {
	if p.IsMessages() {
		out := make([]map[string]interface{}, len(p.Messages))
		for i, msg := range p.Messages {
			entry := map[string]interface{}{
				"role":    string(msg.Role),
				"content": msg.Content,
			}
			if msg.ToolCallID != "" {
				entry["tool_call_id"] = msg.ToolCallID
			}
			out[i] = entry
		}
		return out
	}
	return []map[string]interface{}{{
		"role":    string(types.RoleUser),
		"content": p.Text,
	}}
}
