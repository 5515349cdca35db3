package engine

import (
	"os"
	"path"
	"path/filepath"
)

// matchesAny reports whether name matches any of the glob patterns.
// Patterns are validated at config time, so a malformed pattern here is
// treated as a non-match rather than an error.
func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, err := path.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// executableInfo stats the running binary so the walk can exclude it. A
// tool that rewrites every file under the current directory must never
// rewrite itself. Returns nil when the executable cannot be resolved, in
// which case self-exclusion is skipped.
func executableInfo() os.FileInfo {
	exe, err := os.Executable()
	if err != nil {
		return nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	info, err := os.Stat(exe)
	if err != nil {
		return nil
	}
	return info
}

func isSelf(path string, self os.FileInfo) bool {
	if self == nil {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(info, self)
}
