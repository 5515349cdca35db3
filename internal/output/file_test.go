package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"copymedic/internal/rules"
)

func TestNewFileSink_FormatInference(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "json_extension", file: "out.json", want: "json"},
		{name: "ndjson_extension", file: "out.ndjson", want: "ndjson"},
		{name: "jsonl_extension", file: "out.jsonl", want: "ndjson"},
		{name: "explicit_format", file: "out.dat", format: "json", want: "json"},
		{name: "unknown_extension", file: "out.dat", wantErr: true},
		{name: "unsupported_format", file: "out.json", format: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			s, err := NewFileSink(path, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFileSink returned error: %v", err)
			}
			if s.format != tt.want {
				t.Errorf("format = %q, want %q", s.format, tt.want)
			}
			s.Close()
		})
	}
}

func TestNewFileSink_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.ndjson")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file not created: %v", err)
	}
}

func TestFileSink_JSONWritesAggregateOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	s.Write(rules.UpdatedResult("a.go", 1, "extend-year-range", "x", "y"))
	s.Write(Event{Type: "run.finished"}) // ignored in aggregate mode
	s.Write(rules.AnomalyResult("b.go", 3, "Copyright (c) 1999 Apple"))

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var results []rules.Result
	if err := json.Unmarshal(data, &results); err != nil {
		t.Fatalf("output is not a JSON array: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestFileSink_NDJSONStreamsEventsAndResults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := NewFileSink(path, "")
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	s.Write(Event{Type: "run.started", Mode: "update", Files: 2, Rules: 2})
	s.Write(rules.AnomalyResult("b.go", 3, "Copyright (c) 1999 Apple"))
	s.Write(Event{Type: "run.finished", ExitCode: 0})

	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 ndjson lines, got %d: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[1], `"status":"ANOMALY"`) {
		t.Errorf("second line should carry the anomaly: %q", lines[1])
	}
}
