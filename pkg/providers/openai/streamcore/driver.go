package streamcore

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/huxley-dev/llmstream/pkg/obslog"
	"github.com/huxley-dev/llmstream/pkg/provider/types"
	"github.com/huxley-dev/llmstream/pkg/providerutils/streaming"
	"github.com/huxley-dev/llmstream/pkg/telemetry"
)

// Dialect selects which of OpenAI's two streaming wire formats a Driver
// interprets its records as.
type Dialect string

const (
	DialectChat      Dialect = "chat"
	DialectResponses Dialect = "responses"
)

// Driver wires the SSE reassembler (C1) to the dialect-specific state
// machines (C3/C4) and is the single entry point callers use to turn raw
// bytes from the wire into normalized events. It holds no knowledge of the
// transport it's fed from: HTTP, a test buffer, or anything else works the
// same way.
type Driver struct {
	dialect      Dialect
	reassembler  *streaming.Reassembler
	ctx          *Context
}

// NewDriver creates a Driver for one stream of the given dialect.
func NewDriver(dialect Dialect) *Driver {
	return &Driver{
		dialect:     dialect,
		reassembler: streaming.NewReassembler(),
		ctx:         NewContext(),
	}
}

// Feed hands the driver newly-arrived bytes and synchronously emits every
// normalized event they complete. emit is called zero or more times before
// Feed returns; it must not block.
func (d *Driver) Feed(chunk []byte, emit func(types.StreamEvent)) {
	d.reassembler.Feed(chunk)
	for {
		rec, ok := d.reassembler.Next()
		if !ok {
			return
		}
		switch d.dialect {
		case DialectChat:
			if streaming.IsChatDone(rec) {
				FinishChat(d.ctx, emit)
				continue
			}
			HandleChatRecord(d.ctx, rec, emit)
		case DialectResponses:
			HandleResponsesRecord(d.ctx, rec, emit)
		}
	}
}

// Response builds the terminal Response from everything observed so far.
// It is safe to call at any point, though it's only meaningful after a
// DONE event has been emitted.
func (d *Driver) Response() types.Response {
	return BuildResponse(d.ctx)
}

// Run drives a Driver to completion by reading chunk-oblivious data off r
// until EOF, wrapping the whole stream in a single telemetry span. It
// returns the terminal Response once the stream ends.
// Run drives a Driver to completion over r, recording one OpenTelemetry span
// for the whole stream and logging its lifecycle through logger (resolved
// via obslog.Default, so a nil logger falls back to the environment-driven
// default rather than going silent).
func Run(ctx context.Context, tracer trace.Tracer, logger *slog.Logger, dialect Dialect, modelID string, r io.Reader, emit func(types.StreamEvent)) (types.Response, error) {
	log := obslog.Default(logger)
	return telemetry.RecordSpan(ctx, tracer, telemetry.SpanOptions{
		Name: "openai.stream",
		Attributes: []attribute.KeyValue{
			attribute.String("gen_ai.system", "openai"),
			attribute.String("gen_ai.request.model", modelID),
			attribute.String("llmstream.dialect", string(dialect)),
		},
		EndWhenDone: true,
	}, func(ctx context.Context, span trace.Span) (types.Response, error) {
		log.DebugContext(ctx, "stream started", "model", modelID, "dialect", string(dialect))
		d := NewDriver(dialect)
		loggingEmit := func(ev types.StreamEvent) {
			if ev.Type == types.EventError {
				log.ErrorContext(ctx, "stream error event", "category", string(ev.ErrorCategory), "message", ev.ErrorMessage)
			}
			emit(ev)
		}
		buf := make([]byte, 4096)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				d.Feed(buf[:n], loggingEmit)
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				log.ErrorContext(ctx, "stream read failed", "error", err)
				return types.Response{}, err
			}
		}
		resp := d.Response()
		log.DebugContext(ctx, "stream finished", "finish_reason", string(resp.FinishReason), "total_tokens", resp.Usage.TotalTokens)
		return resp, nil
	})
}
