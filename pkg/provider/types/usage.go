package types

// Usage reports token consumption for a single generation. All fields
// default to zero when the provider never reports that figure; callers
// must not mistake a zero for "definitely none used".
type Usage struct {
	InputTokens    int `json:"inputTokens"`
	OutputTokens   int `json:"outputTokens"`
	ThinkingTokens int `json:"thinkingTokens"`
	TotalTokens    int `json:"totalTokens"`
}

// Add merges two partial usage reports field by field.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:    u.InputTokens + other.InputTokens,
		OutputTokens:   u.OutputTokens + other.OutputTokens,
		ThinkingTokens: u.ThinkingTokens + other.ThinkingTokens,
		TotalTokens:    u.TotalTokens + other.TotalTokens,
	}
}
