package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"copymedic/internal/rules"
)

type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	results         []rules.Result // For JSON array output
	allowedStatuses map[string]bool
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer: w,
		format: format,
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			s.allowedStatuses[strings.ToUpper(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	// Apply filtering if configured
	if len(s.allowedStatuses) > 0 {
		if r, ok := v.(rules.Result); ok {
			if !s.allowedStatuses[string(r.Status)] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		r, ok := v.(rules.Result)
		if !ok {
			// Ignore non-result events in JSON console mode.
			return nil
		}
		s.results = append(s.results, r)
		return nil
	case "ndjson":
		return encodeStream(s.writer, v)
	case "text":
		switch t := v.(type) {
		case Event:
			if t.Type != "run.started" {
				return nil
			}
			verb := "Updating"
			if t.Mode == "check" {
				verb = "Checking"
			}
			if _, err := fmt.Fprintf(s.writer, "%s copyrights from %d to %d...\n", verb, t.FromYear, t.ToYear); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case rules.Result:
			if _, err := fmt.Fprintln(s.writer, textLine(t)); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

// textLine renders one result for the text console. Anomalies print in
// grep -n form so editors and CI annotations can jump straight to the line;
// everything else carries its status tag.
func textLine(r rules.Result) string {
	if r.Status == rules.StatusAnomaly {
		return fmt.Sprintf("%s:%d: %s", r.File, r.Line, r.Message)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", r.Status, r.File)
	if r.Line > 0 {
		fmt.Fprintf(&b, ":%d", r.Line)
	}
	if r.RuleID != "" {
		fmt.Fprintf(&b, ": %s", r.RuleID)
	}
	if r.Message != "" {
		fmt.Fprintf(&b, " - %s", r.Message)
	}
	return b.String()
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.results); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}
