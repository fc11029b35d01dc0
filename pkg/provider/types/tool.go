package types

// ToolDefinition describes a tool the model may call, as advertised to the
// provider in a generation request.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolCall is a fully-assembled tool invocation the model emitted during
// generation: a name paired with its (by then complete) JSON arguments.
type ToolCall struct {
	ID        string                 `json:"id"`
	ToolName  string                 `json:"toolName"`
	Arguments map[string]interface{} `json:"arguments"`
	// RawArguments preserves the exact argument JSON the model produced,
	// for callers that need to forward it unmodified rather than re-encode
	// the decoded map.
	RawArguments string `json:"rawArguments,omitempty"`
}
