package rules

type Status string

const (
	StatusUpdated  Status = "UPDATED"
	StatusOutdated Status = "OUTDATED"
	StatusCurrent  Status = "CURRENT"
	StatusAnomaly  Status = "ANOMALY"
	StatusError    Status = "ERROR"
)

// Result is one finding about one line of one file. File is the
// slash-separated path relative to the run root. Line is 1-based; it is 0
// for findings not tied to a line (file-level errors). RuleID is empty for
// findings no rule produced (anomalies, current notices, errors).
type Result struct {
	RuleID  string `json:"rule_id,omitempty"`
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	// Evidence contains simple key-value string pairs supporting the result.
	Evidence map[string]string `json:"evidence,omitempty"`
}
