package sse

import (
	"bytes"
	"io"
)

// Event is a single server-sent event
type Event struct {
	Event []byte
	Data  []byte
}

// MarshalTo writes the event in text/event-stream framing. Multi-line data
// is split into one "data:" line per line, per the SSE wire format.
func (e *Event) MarshalTo(w io.Writer) error {
	if len(e.Event) > 0 {
		if _, err := w.Write([]byte("event: ")); err != nil {
			return err
		}
		if _, err := w.Write(e.Event); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}

	for _, line := range bytes.Split(e.Data, []byte("\n")) {
		if _, err := w.Write([]byte("data: ")); err != nil {
			return err
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}

	_, err := w.Write([]byte("\n"))
	return err
}
