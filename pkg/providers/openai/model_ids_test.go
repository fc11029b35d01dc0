package openai

import "testing"

// TestOpenAIModelIDs verifies that all language model ID constants have the
// correct string values.
func TestOpenAIModelIDs(t *testing.T) {
	tests := []struct {
		name     string
		constant string
		expected string
	}{
		{"GPT53Codex", ModelGPT53Codex, "gpt-5.3-codex"},

		{"GPT5", ModelGPT5, "gpt-5"},
		{"GPT5Mini", ModelGPT5Mini, "gpt-5-mini"},
		{"GPT5Nano", ModelGPT5Nano, "gpt-5-nano"},
		{"GPT5ChatLatest", ModelGPT5ChatLatest, "gpt-5-chat-latest"},

		{"GPT51", ModelGPT51, "gpt-5.1"},
		{"GPT51ChatLatest", ModelGPT51ChatLatest, "gpt-5.1-chat-latest"},

		{"GPT52", ModelGPT52, "gpt-5.2"},
		{"GPT52Pro", ModelGPT52Pro, "gpt-5.2-pro"},
		{"GPT52ChatLatest", ModelGPT52ChatLatest, "gpt-5.2-chat-latest"},

		{"GPT41", ModelGPT41, "gpt-4.1"},
		{"GPT41Mini", ModelGPT41Mini, "gpt-4.1-mini"},
		{"GPT41Nano", ModelGPT41Nano, "gpt-4.1-nano"},

		{"GPT4o", ModelGPT4o, "gpt-4o"},
		{"GPT4oMini", ModelGPT4oMini, "gpt-4o-mini"},
		{"GPT4oSearchPreview", ModelGPT4oSearchPreview, "gpt-4o-search-preview"},
		{"GPT4oMiniSearchPreview", ModelGPT4oMiniSearchPreview, "gpt-4o-mini-search-preview"},
		{"GPT4oAudioPreview", ModelGPT4oAudioPreview, "gpt-4o-audio-preview"},

		{"O1", ModelO1, "o1"},
		{"O3Mini", ModelO3Mini, "o3-mini"},
		{"O3", ModelO3, "o3"},
		{"O4Mini", ModelO4Mini, "o4-mini"},

		{"GPT4Turbo", ModelGPT4Turbo, "gpt-4-turbo"},
		{"GPT4", ModelGPT4, "gpt-4"},
		{"GPT35Turbo", ModelGPT35Turbo, "gpt-3.5-turbo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("model ID constant %s = %q, want %q", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestGPT53CodexAccepted verifies gpt-5.3-codex can be used with the provider.
func TestGPT53CodexAccepted(t *testing.T) {
	p := New(Config{APIKey: "test-key"})
	model, err := p.LanguageModel(ModelGPT53Codex)
	if err != nil {
		t.Fatalf("LanguageModel(%q) returned error: %v", ModelGPT53Codex, err)
	}
	if model.ModelID() != ModelGPT53Codex {
		t.Errorf("ModelID() = %q, want %q", model.ModelID(), ModelGPT53Codex)
	}
}

// TestReasoningModelsUseResponsesDialect verifies that reasoning model
// families are routed to the Responses API endpoint, not Chat Completions.
func TestReasoningModelsUseResponsesDialect(t *testing.T) {
	p := New(Config{APIKey: "test-key"})

	reasoningModels := []string{ModelO1, ModelO3, ModelO3Mini, ModelO4Mini, ModelGPT5, ModelGPT51, ModelGPT52}
	for _, id := range reasoningModels {
		lm := NewLanguageModel(p, id)
		if lm.endpointPath() != "/responses" {
			t.Errorf("model %q: endpointPath() = %q, want /responses", id, lm.endpointPath())
		}
	}

	chatModels := []string{ModelGPT4o, ModelGPT4Turbo, ModelGPT4, ModelGPT35Turbo, ModelGPT41}
	for _, id := range chatModels {
		lm := NewLanguageModel(p, id)
		if lm.endpointPath() != "/chat/completions" {
			t.Errorf("model %q: endpointPath() = %q, want /chat/completions", id, lm.endpointPath())
		}
	}
}
