package rules

import (
	"path"
	"strings"
)

// IgnoreList suppresses anomaly findings for paths that are known and
// accepted: vendored trees, foreign license text, fixtures that must keep
// their original notices.
//
// A pattern containing a slash is matched against the whole slash-separated
// relative path. A bare pattern is matched against the file's base name and
// against every directory name on its path, so "vendor" covers everything
// below any vendor directory.
type IgnoreList struct {
	Patterns []string
}

// Matches reports whether relPath is covered by any pattern.
func (l *IgnoreList) Matches(relPath string) bool {
	if l == nil || len(l.Patterns) == 0 {
		return false
	}
	segments := strings.Split(relPath, "/")
	for _, pattern := range l.Patterns {
		if strings.Contains(pattern, "/") {
			if matched, _ := path.Match(pattern, relPath); matched {
				return true
			}
			continue
		}
		for _, seg := range segments {
			if matched, _ := path.Match(pattern, seg); matched {
				return true
			}
		}
	}
	return false
}

// Suppresses reports whether a result should be dropped from the run's
// output. Only anomalies are suppressed: ignoring a path silences its
// advisories, it never blocks a rewrite.
func (l *IgnoreList) Suppresses(res Result) bool {
	return res.Status == StatusAnomaly && l.Matches(res.File)
}
