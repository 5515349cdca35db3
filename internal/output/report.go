package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"copymedic/internal/rules"
)

// ReportSink writes a Markdown summary of the run on Close: run identity,
// per-status counts, which files were rewritten by which rule, and the full
// residual anomaly listing. It is meant to be attached to the change that a
// run produced, so a reviewer sees what moved and what still needs hands.
type ReportSink struct {
	path         string
	file         *os.File
	mu           sync.Mutex
	results      []rules.Result
	mode         string
	root         string
	holder       string
	fromYear     int
	toYear       int
	filesScanned int
	exitCode     int
	haveExitCode bool
}

func NewReportSink(path string) (*ReportSink, error) {
	if path == "" {
		return nil, fmt.Errorf("report path required")
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}

	return &ReportSink{
		path: path,
		file: f,
	}, nil
}

func (s *ReportSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch t := v.(type) {
	case rules.Result:
		s.results = append(s.results, t)
	case Event:
		switch t.Type {
		case "run.started":
			s.mode = t.Mode
			s.root = t.Root
			s.holder = t.Holder
			s.fromYear = t.FromYear
			s.toYear = t.ToYear
			s.filesScanned = t.Files
		case "run.finished":
			s.exitCode = t.ExitCode
			s.haveExitCode = true
		}
	}
	return nil
}

func (s *ReportSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeErr := func(err error) error {
		_ = s.file.Close()
		return err
	}

	counts := countByStatus(s.results)
	perRule := countByRule(s.results)
	anomalies := filterStatus(s.results, rules.StatusAnomaly)
	errs := filterStatus(s.results, rules.StatusError)

	var b strings.Builder
	b.WriteString("# Copyright Update Report\n\n")

	// --- Run summary ---
	if s.mode != "" {
		b.WriteString(fmt.Sprintf("- Mode: %s\n", s.mode))
	}
	if s.root != "" {
		b.WriteString(fmt.Sprintf("- Root: `%s`\n", s.root))
	}
	if s.holder != "" {
		b.WriteString(fmt.Sprintf("- Holder: %s\n", s.holder))
	}
	if s.fromYear != 0 || s.toYear != 0 {
		b.WriteString(fmt.Sprintf("- Years: %d -> %d\n", s.fromYear, s.toYear))
	}
	b.WriteString(fmt.Sprintf("- Files scanned: %d\n", s.filesScanned))
	if s.haveExitCode {
		b.WriteString(fmt.Sprintf("- Exit code: %d\n", s.exitCode))
	}
	b.WriteString("\n")

	// --- Summary table ---
	b.WriteString("## Summary\n\n")
	if len(counts) == 0 {
		b.WriteString("No notice lines needed attention.\n\n")
	} else {
		b.WriteString("| Status | Lines |\n")
		b.WriteString("| --- | ---: |\n")
		for _, st := range []rules.Status{rules.StatusUpdated, rules.StatusOutdated, rules.StatusCurrent, rules.StatusAnomaly, rules.StatusError} {
			if n := counts[st]; n > 0 {
				b.WriteString(fmt.Sprintf("| %s | %d |\n", st, n))
			}
		}
		b.WriteString("\n")
	}

	// --- Rewrites, grouped by rule ---
	rewriteHeader := "## Updated lines"
	rewriteStatus := rules.StatusUpdated
	if s.mode == "check" {
		rewriteHeader = "## Outdated lines"
		rewriteStatus = rules.StatusOutdated
	}
	b.WriteString(rewriteHeader + "\n\n")
	if counts[rewriteStatus] == 0 {
		b.WriteString("- None\n\n")
	} else {
		for _, rc := range perRule {
			if rc.Status != rewriteStatus {
				continue
			}
			b.WriteString(fmt.Sprintf("- **%s**: %d lines in %s\n", rc.RuleID, rc.Lines, formatFileList(rc.Files, 3)))
		}
		b.WriteString("\n")

		b.WriteString("### Files touched\n\n")
		for _, fl := range filesWithStatus(s.results, rewriteStatus) {
			b.WriteString(fmt.Sprintf("- `%s` (%d lines)\n", fl.File, fl.Lines))
		}
		b.WriteString("\n")
	}

	// --- Residual anomalies ---
	b.WriteString("## Residual anomalies\n\n")
	if len(anomalies) == 0 {
		b.WriteString("- None\n\n")
	} else {
		b.WriteString("Notice lines the rules could not bring current. These need a human:\n\n")
		for _, r := range anomalies {
			b.WriteString(fmt.Sprintf("- `%s:%d:` %s\n", r.File, r.Line, r.Message))
		}
		b.WriteString("\n")
	}

	// --- Errors ---
	b.WriteString("## Errors\n\n")
	if len(errs) == 0 {
		b.WriteString("- None\n\n")
	} else {
		for _, r := range errs {
			b.WriteString(fmt.Sprintf("- `%s`: %s\n", r.File, r.Message))
		}
		b.WriteString("\n")
	}

	// --- Rules applied ---
	b.WriteString("## Rules applied\n")
	ruleIDs := make(map[string]struct{})
	for _, r := range s.results {
		if r.RuleID != "" {
			ruleIDs[r.RuleID] = struct{}{}
		}
	}
	var ids []string
	for id := range ruleIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		b.WriteString("- None\n")
	} else {
		for _, id := range ids {
			b.WriteString(fmt.Sprintf("- %s\n", id))
		}
	}

	if _, err := s.file.WriteString(b.String()); err != nil {
		return writeErr(err)
	}
	return s.file.Close()
}
