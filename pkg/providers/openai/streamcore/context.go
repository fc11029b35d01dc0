// Package streamcore normalizes OpenAI's two streaming dialects — Chat
// Completions and Responses — into the provider-agnostic types.StreamEvent
// sequence. It is single-threaded and synchronous: every exported function
// here runs to completion on the caller's goroutine and never blocks, so it
// can be driven directly from an HTTP response body read loop or a chunk
// callback from any transport.
package streamcore

import "github.com/huxley-dev/llmstream/pkg/provider/types"

// Context accumulates the state of one in-progress stream across however
// many records it takes to complete it. A Context is created once per
// stream and fed every record that arrives for that stream, in order.
type Context struct {
	model      string
	modelSet   bool
	started    bool
	inToolCall bool

	toolCallID    string
	toolCallIndex int
	toolName      string
	toolArgs      string

	pendingToolCall *types.ToolCall
	finishReason    types.FinishReason
	usage           types.Usage
}

// NewContext creates an empty Context for a new stream. tool_call_index
// starts at -1, a sentinel no real wire index ever takes, so the first
// tool call (whose wire index is frequently 0) is always recognized as new.
func NewContext() *Context {
	return &Context{toolCallIndex: -1}
}

// setModel records the model name on first write only; later writes within
// the same stream are ignored, since every provider that reports a model
// mid-stream reports the same one on every record.
func (c *Context) setModel(model string) {
	if model == "" || c.modelSet {
		return
	}
	c.model = model
	c.modelSet = true
}
