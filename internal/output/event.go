package output

import "copymedic/internal/rules"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - run.started
// - rule.result
// - run.finished
//
// JSON mode remains an aggregate of rules.Result values.
type Event struct {
	Type string `json:"type"`

	// Run identity, set on run.started.
	Mode   string `json:"mode,omitempty"` // "update" | "check"
	Root   string `json:"root,omitempty"`
	Holder string `json:"holder,omitempty"`

	*rules.Result

	// FromYear and ToYear are the stale and target years of the run.
	FromYear int `json:"from_year,omitempty"`
	ToYear   int `json:"to_year,omitempty"`

	// Files and Rules are enumeration counts, set on run.started.
	Files int `json:"files,omitempty"`
	Rules int `json:"rules,omitempty"`

	ExitCode int `json:"exit_code,omitempty"`
}

func eventFromResult(r rules.Result) Event {
	return Event{Type: "rule.result", Result: &r}
}
