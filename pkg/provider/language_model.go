package provider

import (
	"context"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
)

// LanguageModel is a chat/completions-style language model that can stream
// its output. Providers implement this to plug into the normalized stream
// pipeline; everything below DoStream (wire format, dialect, framing) is the
// provider's concern, not the caller's.
type LanguageModel interface {
	// SpecificationVersion identifies the shape of this interface, so callers
	// can branch on breaking changes without a type assertion.
	SpecificationVersion() string

	// Provider returns the provider name (e.g. "openai").
	Provider() string

	// ModelID returns the model identifier (e.g. "gpt-4o").
	ModelID() string

	SupportsTools() bool

	// DoStream issues a streaming request and normalizes the provider's wire
	// format into types.StreamEvent values delivered to onEvent. onEvent is
	// called synchronously from within DoStream; it must not block.
	DoStream(ctx context.Context, opts GenerateOptions, onEvent func(types.StreamEvent)) error
}

// GenerateOptions contains the options for a streaming generation request.
type GenerateOptions struct {
	Prompt      types.Prompt
	System      string
	Temperature *float64
	MaxTokens   *int
	TopP        *float64
	Tools       []types.ToolDefinition
	Headers     map[string]string
}
