package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huxley-dev/llmstream/pkg/provider"
	"github.com/huxley-dev/llmstream/pkg/provider/types"
)

func TestLanguageModel_DoStream_ChatCompletions(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`data: {"model":"gpt-4o","choices":[{"delta":{"content":"Hi"},"finish_reason":null}]}` + "\n\n"))
		w.Write([]byte(`data: {"choices":[{"delta":{},"finish_reason":"stop"}]}` + "\n\n"))
		w.Write([]byte("data: [DONE]\n\n"))
	}))
	defer server.Close()

	p := New(Config{APIKey: "test-key", BaseURL: server.URL})
	model := NewLanguageModel(p, ModelGPT4o)

	var events []types.StreamEvent
	err := model.DoStream(context.Background(), provider.GenerateOptions{
		Prompt: types.Prompt{Text: "hello"},
	}, func(e types.StreamEvent) {
		events = append(events, e)
	})
	if err != nil {
		t.Fatalf("DoStream: %v", err)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}

	if events[0].Type != types.EventStart {
		t.Fatalf("first event = %v", events[0].Type)
	}
	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonStop {
		t.Errorf("last event = %+v", last)
	}
}

func TestLanguageModel_DoStream_ResponsesDialect(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("event: response.created\ndata: {\"response\":{\"model\":\"o3\"}}\n\n"))
		w.Write([]byte("event: response.output_text.delta\ndata: {\"delta\":\"Hi\"}\n\n"))
		w.Write([]byte("event: response.completed\ndata: {\"response\":{\"status\":\"completed\"}}\n\n"))
	}))
	defer server.Close()

	p := New(Config{APIKey: "test-key", BaseURL: server.URL})
	model := NewLanguageModel(p, ModelO3)

	var events []types.StreamEvent
	err := model.DoStream(context.Background(), provider.GenerateOptions{
		Prompt: types.Prompt{Text: "hello"},
	}, func(e types.StreamEvent) {
		events = append(events, e)
	})
	if err != nil {
		t.Fatalf("DoStream: %v", err)
	}
	if gotPath != "/responses" {
		t.Errorf("request path = %q, want /responses", gotPath)
	}

	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonStop {
		t.Errorf("last event = %+v", last)
	}
}

func TestLanguageModel_BuildRequestBody(t *testing.T) {
	p := New(Config{APIKey: "test-key"})
	model := NewLanguageModel(p, ModelGPT4o)

	temp := 0.5
	body := model.buildRequestBody(provider.GenerateOptions{
		Prompt: types.Prompt{
			System: "be terse",
			Messages: []types.Message{
				{Role: types.RoleUser, Content: "hi"},
			},
		},
		Temperature: &temp,
		Tools: []types.ToolDefinition{
			{Name: "get_weather", Description: "look up weather", Parameters: map[string]interface{}{"type": "object"}},
		},
	})

	if body["model"] != ModelGPT4o {
		t.Errorf("model = %v", body["model"])
	}
	if body["stream"] != true {
		t.Errorf("stream = %v, want true", body["stream"])
	}
	if body["temperature"] != 0.5 {
		t.Errorf("temperature = %v", body["temperature"])
	}

	messages, ok := body["messages"].([]map[string]interface{})
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %#v", body["messages"])
	}
	if messages[0]["role"] != "system" {
		t.Errorf("first message role = %v, want system", messages[0]["role"])
	}

	tools, ok := body["tools"].([]map[string]interface{})
	if !ok || len(tools) != 1 {
		t.Fatalf("tools = %#v", body["tools"])
	}
}

func TestLanguageModel_SupportsTools(t *testing.T) {
	p := New(Config{APIKey: "test-key"})
	model := NewLanguageModel(p, ModelGPT4o)
	if !model.SupportsTools() {
		t.Error("expected SupportsTools() to be true")
	}
}
