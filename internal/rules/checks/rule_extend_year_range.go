package checks

import (
	"regexp"
	"strconv"

	"copymedic/internal/rules"
)

// ExtendYearRangeRule advances the end of an existing year range, turning
// "Copyright (c) 2020-<last> <holder>" into "Copyright (c) 2020-<this> <holder>".
type ExtendYearRangeRule struct{}

func (r *ExtendYearRangeRule) ID() string { return "extend-year-range" }

func (r *ExtendYearRangeRule) Title() string {
	return "Extend an existing copyright year range"
}

func (r *ExtendYearRangeRule) Description() string {
	return "Rewrites notice lines whose year range ends in last year so the range ends in the current year. The match is case-sensitive and unanchored: comment markers may precede the notice and any suffix may follow the holder."
}

func (r *ExtendYearRangeRule) Compile(env rules.Env) (rules.Rewriter, error) {
	re, err := regexp.Compile(`(Copyright \(c\) .*-)` + strconv.Itoa(env.LastYear) + `( ` + regexp.QuoteMeta(env.Holder) + `)`)
	if err != nil {
		return nil, err
	}
	replacement := "${1}" + strconv.Itoa(env.ThisYear) + "${2}"
	return rules.RewriterFunc(func(line string) (string, bool) {
		if !re.MatchString(line) {
			return line, false
		}
		return re.ReplaceAllString(line, replacement), true
	}), nil
}

func init() {
	rules.Register(&ExtendYearRangeRule{})
}
