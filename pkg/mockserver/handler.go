package mockserver

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/huxley-dev/llmstream/pkg/obslog"
	"github.com/huxley-dev/llmstream/pkg/providerutils/streaming"
)

// Options configures a mock streaming handler.
type Options struct {
	// Model is reported in the response payloads.
	Model string

	// FragmentBytes splits each serialized SSE frame into pieces of at most
	// this many bytes, each its own Write+Flush, to exercise a client's
	// chunk-boundary handling. Zero means write each frame whole.
	FragmentBytes int

	// Limiter, if non-nil, is consulted before serving each request; a
	// request that doesn't get a token is answered with a rate-limit error
	// in the requested dialect instead of a scripted turn.
	Limiter *rate.Limiter

	// Logger receives one line per served request. A nil value falls back
	// to obslog's environment-driven default logger.
	Logger *slog.Logger
}

// NewChatHandler returns an http.Handler that serves scenario turns as
// Chat Completions dialect SSE.
func NewChatHandler(scenario *Scenario, opts Options) http.Handler {
	log := obslog.Default(opts.Logger)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, fw := prepareSSE(w, opts.FragmentBytes)
		if flusher == nil {
			return
		}

		if opts.Limiter != nil && !opts.Limiter.Allow() {
			log.WarnContext(r.Context(), "mock chat request rate limited")
			writeChatRateLimitError(fw)
			flusher.Flush()
			return
		}

		turn := scenario.Pop()
		id := "chatcmpl-" + uuid.NewString()

		log.DebugContext(r.Context(), "serving mock chat turn", "id", id, "tool_calls", len(turn.ToolCalls))
		writeChatTurn(fw, id, opts.Model, turn)
		flusher.Flush()
	})
}

// NewResponsesHandler returns an http.Handler that serves scenario turns as
// Responses dialect SSE.
func NewResponsesHandler(scenario *Scenario, opts Options) http.Handler {
	log := obslog.Default(opts.Logger)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher, fw := prepareSSE(w, opts.FragmentBytes)
		if flusher == nil {
			return
		}

		if opts.Limiter != nil && !opts.Limiter.Allow() {
			log.WarnContext(r.Context(), "mock responses request rate limited")
			writeResponsesRateLimitError(fw)
			flusher.Flush()
			return
		}

		turn := scenario.Pop()
		id := "resp_" + uuid.NewString()

		log.DebugContext(r.Context(), "serving mock responses turn", "id", id, "tool_calls", len(turn.ToolCalls))
		writeResponsesTurn(fw, id, opts.Model, turn)
		flusher.Flush()
	})
}

func prepareSSE(w http.ResponseWriter, fragmentBytes int) (http.Flusher, *fragmentWriter) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return nil, nil
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	return flusher, &fragmentWriter{w: w, flusher: flusher, fragmentBytes: fragmentBytes}
}

// fragmentWriter wraps an http.ResponseWriter, optionally splitting each
// WriteEvent call's bytes into small pieces flushed one at a time so a
// client reassembling the stream can never assume a record arrives whole.
type fragmentWriter struct {
	w             http.ResponseWriter
	flusher       http.Flusher
	fragmentBytes int
}

func (fw *fragmentWriter) Write(p []byte) (int, error) {
	if fw.fragmentBytes <= 0 || len(p) <= fw.fragmentBytes {
		n, err := fw.w.Write(p)
		fw.flusher.Flush()
		return n, err
	}
	written := 0
	for written < len(p) {
		end := written + fw.fragmentBytes
		if end > len(p) {
			end = len(p)
		}
		n, err := fw.w.Write(p[written:end])
		written += n
		fw.flusher.Flush()
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

func writeChatTurn(fw *fragmentWriter, id, model string, turn Turn) {
	w := streaming.NewWriter(fw)

	role, _ := sonic.MarshalString(map[string]interface{}{
		"id": id, "object": "chat.completion.chunk", "model": model,
		"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{"role": "assistant"}}},
	})
	w.WriteData(role)

	if len(turn.ToolCalls) > 0 {
		for i, tc := range turn.ToolCalls {
			start, _ := sonic.MarshalString(map[string]interface{}{
				"id": id, "model": model,
				"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{
					"tool_calls": []map[string]interface{}{{
						"index": i, "id": "call_" + uuid.NewString(),
						"function": map[string]interface{}{"name": tc.Name, "arguments": ""},
					}},
				}}},
			})
			w.WriteData(start)

			delta, _ := sonic.MarshalString(map[string]interface{}{
				"id": id, "model": model,
				"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{
					"tool_calls": []map[string]interface{}{{
						"index": i,
						"function": map[string]interface{}{"arguments": tc.Arguments},
					}},
				}}},
			})
			w.WriteData(delta)
		}
		finish, _ := sonic.MarshalString(map[string]interface{}{
			"id": id, "model": model,
			"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{}, "finish_reason": "tool_calls"}},
		})
		w.WriteData(finish)
	} else {
		chunks := splitWords(turn.Text)
		for _, c := range chunks {
			delta, _ := sonic.MarshalString(map[string]interface{}{
				"id": id, "model": model,
				"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{"content": c}}},
			})
			w.WriteData(delta)
		}
		finish, _ := sonic.MarshalString(map[string]interface{}{
			"id": id, "model": model,
			"choices": []map[string]interface{}{{"index": 0, "delta": map[string]interface{}{}, "finish_reason": "stop"}},
			"usage":   map[string]interface{}{"prompt_tokens": 8, "completion_tokens": len(chunks), "total_tokens": 8 + len(chunks)},
		})
		w.WriteData(finish)
	}

	w.WriteDone()
}

func writeResponsesTurn(fw *fragmentWriter, id, model string, turn Turn) {
	w := streaming.NewWriter(fw)

	created, _ := sonic.MarshalString(map[string]interface{}{
		"response": map[string]interface{}{"id": id, "model": model},
	})
	w.WriteNamedEvent("response.created", created)

	if len(turn.ToolCalls) > 0 {
		for i, tc := range turn.ToolCalls {
			callID := "call_" + uuid.NewString()
			added, _ := sonic.MarshalString(map[string]interface{}{
				"output_index": i,
				"item":         map[string]interface{}{"type": "function_call", "call_id": callID, "name": tc.Name},
			})
			w.WriteNamedEvent("response.output_item.added", added)

			delta, _ := sonic.MarshalString(map[string]interface{}{"output_index": i, "delta": tc.Arguments})
			w.WriteNamedEvent("response.function_call_arguments.delta", delta)

			done, _ := sonic.MarshalString(map[string]interface{}{"output_index": i})
			w.WriteNamedEvent("response.function_call_arguments.done", done)

			itemDone, _ := sonic.MarshalString(map[string]interface{}{
				"output_index": i,
				"item":         map[string]interface{}{"type": "function_call", "call_id": callID},
			})
			w.WriteNamedEvent("response.output_item.done", itemDone)
		}
	} else {
		for _, c := range splitWords(turn.Text) {
			delta, _ := sonic.MarshalString(map[string]interface{}{"delta": c})
			w.WriteNamedEvent("response.output_text.delta", delta)
		}
	}

	completed, _ := sonic.MarshalString(map[string]interface{}{
		"response": map[string]interface{}{
			"id": id, "model": model, "status": "completed",
			"usage": map[string]interface{}{"input_tokens": 8, "output_tokens": 4, "total_tokens": 12},
		},
	})
	w.WriteNamedEvent("response.completed", completed)
}

func writeChatRateLimitError(fw *fragmentWriter) {
	w := streaming.NewWriter(fw)
	body, _ := sonic.MarshalString(map[string]interface{}{
		"error": map[string]interface{}{"type": "rate_limit_exceeded", "message": "rate limit exceeded"},
	})
	w.WriteData(body)
}

func writeResponsesRateLimitError(fw *fragmentWriter) {
	w := streaming.NewWriter(fw)
	body, _ := sonic.MarshalString(map[string]interface{}{
		"type": "rate_limit_error", "message": "rate limit exceeded",
	})
	w.WriteNamedEvent("response.failed", body)
}

// splitWords breaks text into whitespace-preserving pieces so a scripted
// turn streams back more than one delta, the way a real token-by-token
// completion does. An empty string yields no pieces at all.
func splitWords(text string) []string {
	if text == "" {
		return nil
	}
	var pieces []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == ' ' {
			pieces = append(pieces, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		pieces = append(pieces, text[start:])
	}
	return pieces
}

// DefaultLimiter returns a rate.Limiter with a small sustained rate and
// burst, suitable for simulating OpenAI's per-key rate limiting in tests.
func DefaultLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Second), 5)
}
