package output

import (
	"fmt"
	"sort"
	"strings"

	"copymedic/internal/rules"
)

func countByStatus(results []rules.Result) map[rules.Status]int {
	counts := make(map[rules.Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

// ruleCount aggregates one rule's rewrites: how many lines it touched and
// in which files.
type ruleCount struct {
	RuleID string
	Status rules.Status
	Lines  int
	Files  []string
}

// countByRule groups rewrite results by rule ID, sorted by ID.
func countByRule(results []rules.Result) []ruleCount {
	byRule := make(map[string]*ruleCount)
	fileSeen := make(map[string]map[string]bool)

	for _, r := range results {
		if r.RuleID == "" {
			continue
		}
		rc, ok := byRule[r.RuleID]
		if !ok {
			rc = &ruleCount{RuleID: r.RuleID, Status: r.Status}
			byRule[r.RuleID] = rc
			fileSeen[r.RuleID] = make(map[string]bool)
		}
		rc.Lines++
		if !fileSeen[r.RuleID][r.File] {
			fileSeen[r.RuleID][r.File] = true
			rc.Files = append(rc.Files, r.File)
		}
	}

	var out []ruleCount
	for _, rc := range byRule {
		sort.Strings(rc.Files)
		out = append(out, *rc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RuleID < out[j].RuleID })
	return out
}

func filterStatus(results []rules.Result, status rules.Status) []rules.Result {
	var out []rules.Result
	for _, r := range results {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

type fileLines struct {
	File  string
	Lines int
}

// filesWithStatus lists files carrying results of the given status with
// their line counts, sorted by path.
func filesWithStatus(results []rules.Result, status rules.Status) []fileLines {
	counts := make(map[string]int)
	for _, r := range results {
		if r.Status == status {
			counts[r.File]++
		}
	}
	var out []fileLines
	for file, n := range counts {
		out = append(out, fileLines{File: file, Lines: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })
	return out
}

func formatFileList(files []string, max int) string {
	if len(files) == 0 {
		return "0 files"
	}
	if len(files) <= max {
		return fmt.Sprintf("%d files (%s)", len(files), strings.Join(files, ", "))
	}
	return fmt.Sprintf("%d files (%s, +%d more)", len(files), strings.Join(files[:max], ", "), len(files)-max)
}
