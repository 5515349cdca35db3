package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// NoticePattern compiles the detector for copyright notice lines: the
// literal "Copyright (c)" followed, anywhere later in the same line, by the
// holder token. Matching is case-sensitive, like the rewrite rules.
func NoticePattern(holder string) *regexp.Regexp {
	return regexp.MustCompile(`Copyright \(c\).*` + regexp.QuoteMeta(holder))
}

// IsCurrent reports whether a notice line already names year. The check is
// a plain substring test on the year digits, matching the residual scan:
// any notice that mentions the target year counts as current, whatever its
// shape.
func IsCurrent(line string, year int) bool {
	return strings.Contains(line, strconv.Itoa(year))
}
