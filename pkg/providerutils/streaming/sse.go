package streaming

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Writer serializes Record values as wire-format Server-Sent Events. It is
// used by the mock server side, the mirror image of Reassembler.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteEvent writes a single SSE record.
func (w *Writer) WriteEvent(rec Record) error {
	var buf bytes.Buffer

	if rec.Event != "" {
		fmt.Fprintf(&buf, "event: %s\n", rec.Event)
	}
	if rec.ID != "" {
		fmt.Fprintf(&buf, "id: %s\n", rec.ID)
	}
	if rec.Retry > 0 {
		fmt.Fprintf(&buf, "retry: %d\n", rec.Retry)
	}
	if rec.Data != "" {
		for _, line := range strings.Split(rec.Data, "\n") {
			fmt.Fprintf(&buf, "data: %s\n", line)
		}
	}
	buf.WriteString("\n")

	_, err := w.w.Write(buf.Bytes())
	return err
}

// WriteData writes a data-only record (no event name), the Chat Completions
// dialect's framing.
func (w *Writer) WriteData(data string) error {
	return w.WriteEvent(Record{Data: data})
}

// WriteNamedEvent writes a named event with a JSON data payload, the
// Responses dialect's framing.
func (w *Writer) WriteNamedEvent(eventType, data string) error {
	return w.WriteEvent(Record{Event: eventType, Data: data})
}

// WriteDone writes the Chat Completions terminal "[DONE]" marker.
func (w *Writer) WriteDone() error {
	return w.WriteData("[DONE]")
}

// IsChatDone reports whether a Record is the Chat Completions dialect's
// terminal data-only "[DONE]" marker.
func IsChatDone(rec Record) bool {
	return rec.Data == "[DONE]"
}
