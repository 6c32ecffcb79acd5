package sse

import (
	"bytes"
	"testing"
)

func TestMarshalTo(t *testing.T) {
	var buf bytes.Buffer
	e := Event{Event: []byte("comments"), Data: []byte(`{"threads":[]}`)}
	if err := e.MarshalTo(&buf); err != nil {
		t.Fatalf("MarshalTo failed: %v", err)
	}
	want := "event: comments\ndata: {\"threads\":[]}\n\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestMarshalToMultiLineData(t *testing.T) {
	var buf bytes.Buffer
	e := Event{Data: []byte("first\nsecond")}
	if err := e.MarshalTo(&buf); err != nil {
		t.Fatalf("MarshalTo failed: %v", err)
	}
	want := "data: first\ndata: second\n\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

func TestMarshalToEmptyData(t *testing.T) {
	var buf bytes.Buffer
	e := Event{Event: []byte("ping"), Data: []byte("")}
	if err := e.MarshalTo(&buf); err != nil {
		t.Fatalf("MarshalTo failed: %v", err)
	}
	want := "event: ping\ndata: \n\n"
	if buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}
