package mockserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/huxley-dev/llmstream/pkg/provider/types"
	"github.com/huxley-dev/llmstream/pkg/providers/openai/streamcore"
)

func runDriver(t *testing.T, dialect streamcore.Dialect, body io.Reader) []types.StreamEvent {
	t.Helper()
	d := streamcore.NewDriver(dialect)
	var events []types.StreamEvent
	buf := make([]byte, 37) // deliberately small and off-size: exercises chunk-boundary handling
	for {
		n, err := body.Read(buf)
		if n > 0 {
			d.Feed(buf[:n], func(e types.StreamEvent) { events = append(events, e) })
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading response body: %v", err)
		}
	}
	return events
}

func TestChatHandler_TextTurn(t *testing.T) {
	scenario := NewScenario(TextTurn("hello there friend"))
	server := httptest.NewServer(NewChatHandler(scenario, Options{Model: "gpt-4o"}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectChat, resp.Body)
	if len(events) < 2 {
		t.Fatalf("expected at least START and DONE, got %d events: %+v", len(events), events)
	}
	if events[0].Type != types.EventStart {
		t.Errorf("first event = %v, want START", events[0].Type)
	}

	var text string
	for _, e := range events {
		if e.Type == types.EventTextDelta {
			text += e.Text
		}
	}
	if text != "hello there friend" {
		t.Errorf("reassembled text = %q, want %q", text, "hello there friend")
	}

	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonStop {
		t.Errorf("last event = %+v, want DONE/STOP", last)
	}
}

func TestChatHandler_ToolCallTurn(t *testing.T) {
	scenario := NewScenario(ToolCallTurn("get_weather", `{"city":"Tokyo"}`))
	server := httptest.NewServer(NewChatHandler(scenario, Options{Model: "gpt-4o"}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectChat, resp.Body)

	var done *types.StreamEvent
	for i := range events {
		if events[i].Type == types.EventToolCallDone {
			done = &events[i]
		}
	}
	if done == nil {
		t.Fatal("expected a TOOL_CALL_DONE event")
	}
	if done.ToolName != "get_weather" {
		t.Errorf("tool name = %q, want get_weather", done.ToolName)
	}
	if done.RawArguments != `{"city":"Tokyo"}` {
		t.Errorf("raw arguments = %q", done.RawArguments)
	}

	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonToolUse {
		t.Errorf("last event = %+v, want DONE/TOOL_USE", last)
	}
}

func TestResponsesHandler_TextTurn(t *testing.T) {
	scenario := NewScenario(TextTurn("streamed in pieces"))
	server := httptest.NewServer(NewResponsesHandler(scenario, Options{Model: "o3", FragmentBytes: 16}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectResponses, resp.Body)

	var text string
	for _, e := range events {
		if e.Type == types.EventTextDelta {
			text += e.Text
		}
	}
	if text != "streamed in pieces" {
		t.Errorf("reassembled text = %q, want %q", text, "streamed in pieces")
	}

	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonStop {
		t.Errorf("last event = %+v, want DONE/STOP", last)
	}
}

func TestResponsesHandler_ToolCallTurn(t *testing.T) {
	scenario := NewScenario(ToolCallTurn("search", `{"q":"golang"}`))
	server := httptest.NewServer(NewResponsesHandler(scenario, Options{Model: "o3", FragmentBytes: 5}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectResponses, resp.Body)

	var done *types.StreamEvent
	for i := range events {
		if events[i].Type == types.EventToolCallDone {
			done = &events[i]
		}
	}
	if done == nil {
		t.Fatal("expected a TOOL_CALL_DONE event")
	}
	if done.ToolName != "search" {
		t.Errorf("tool name = %q, want search", done.ToolName)
	}

	last := events[len(events)-1]
	if last.Type != types.EventDone || last.FinishReason != types.FinishReasonToolUse {
		t.Errorf("last event = %+v, want DONE/TOOL_USE", last)
	}
}

func TestScenario_ExhaustedDegradesToEmptyText(t *testing.T) {
	scenario := NewScenario(TextTurn("only one"))
	server := httptest.NewServer(NewChatHandler(scenario, Options{Model: "gpt-4o"}))
	defer server.Close()

	http.Get(server.URL)

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectChat, resp.Body)
	last := events[len(events)-1]
	if last.Type != types.EventDone {
		t.Errorf("last event = %+v, want DONE even once the scenario is exhausted", last)
	}
}

func TestHandler_RateLimited(t *testing.T) {
	limiter := DefaultLimiter()
	for i := 0; i < 5; i++ {
		limiter.Allow()
	}

	scenario := NewScenario(TextTurn("never reached"))
	server := httptest.NewServer(NewChatHandler(scenario, Options{Model: "gpt-4o", Limiter: limiter}))
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	events := runDriver(t, streamcore.DialectChat, resp.Body)
	var sawError bool
	for _, e := range events {
		if e.Type == types.EventError && e.ErrorCategory == types.ErrorCategoryRateLimit {
			sawError = true
		}
	}
	if !sawError {
		t.Errorf("expected an ERROR event categorized as rate limit, got %+v", events)
	}
	if scenario.Remaining() != 1 {
		t.Errorf("rate-limited request should not have popped the scenario, remaining = %d", scenario.Remaining())
	}
}
