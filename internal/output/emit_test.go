package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"copymedic/internal/rules"
)

func TestNewEmitSink_RejectsBadInputs(t *testing.T) {
	if _, err := NewEmitSink(nil, "json"); err == nil {
		t.Fatal("expected error for nil writer")
	}
	if _, err := NewEmitSink(&bytes.Buffer{}, "yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestEmitSink_JSONAggregates(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewEmitSink(&buf, "json")
	if err != nil {
		t.Fatalf("NewEmitSink returned error: %v", err)
	}

	s.Write(Event{Type: "run.started"}) // ignored in aggregate mode
	s.Write(rules.UpdatedResult("a.go", 1, "extend-year-range", "x", "y"))
	s.Write(rules.AnomalyResult("b.go", 9, "Copyright (c) 1999 Apple"))

	if buf.Len() != 0 {
		t.Fatalf("json mode must not write before Close, got %q", buf.String())
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	var results []rules.Result
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].Status != rules.StatusAnomaly || results[1].Line != 9 {
		t.Errorf("unexpected second result: %+v", results[1])
	}
}

func TestEmitSink_NDJSONStreamsResults(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewEmitSink(&buf, "ndjson")
	if err != nil {
		t.Fatalf("NewEmitSink returned error: %v", err)
	}

	s.Write(rules.UpdatedResult("a.go", 1, "extend-year-range", "x", "y"))

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, `"type":"rule.result"`) {
		t.Errorf("result should be wrapped in a rule.result event: %q", line)
	}
	if !strings.Contains(line, `"file":"a.go"`) {
		t.Errorf("event should carry the file: %q", line)
	}
}
