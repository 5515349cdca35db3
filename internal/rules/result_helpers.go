package rules

import "strings"

func NewResult(file string, line int, ruleID string, status Status, message string) Result {
	res := Result{
		Status: status,
		File:   file,
		Line:   line,
		RuleID: ruleID,
	}
	if message != "" {
		res.Message = message
	}
	return res
}

// UpdatedResult records a line the named rule rewrote in place. The message
// carries the new text; the original is kept as evidence.
func UpdatedResult(file string, line int, ruleID, before, after string) Result {
	res := NewResult(file, line, ruleID, StatusUpdated, strings.TrimSpace(after))
	res.Evidence = map[string]string{"before": before}
	return res
}

// OutdatedResult records a line the named rule would rewrite. The message
// carries the stale text as found; the would-be text is kept as evidence.
func OutdatedResult(file string, line int, ruleID, before, after string) Result {
	res := NewResult(file, line, ruleID, StatusOutdated, strings.TrimSpace(before))
	res.Evidence = map[string]string{"want": after}
	return res
}

// CurrentResult records a notice line that already names the target year.
func CurrentResult(file string, line int, text string) Result {
	return NewResult(file, line, "", StatusCurrent, strings.TrimSpace(text))
}

// AnomalyResult records a notice line no rule could bring current. The
// message is the line text exactly as it appears in the file.
func AnomalyResult(file string, line int, text string) Result {
	return NewResult(file, line, "", StatusAnomaly, text)
}

func ErrorResult(file string, message string) Result {
	return NewResult(file, 0, "", StatusError, message)
}
