package checks

import (
	"fmt"
	"strings"

	"copymedic/internal/rules"
)

// PromoteSingleYearRule turns a single-year notice into a range, rewriting
// "Copyright (c) <last> <holder>" to "Copyright (c) <last>-<this> <holder>".
//
// It sorts after extend-year-range, so a line that already carries a range
// is claimed by that rule first and never reaches this one.
type PromoteSingleYearRule struct{}

func (r *PromoteSingleYearRule) ID() string { return "promote-single-year" }

func (r *PromoteSingleYearRule) Title() string {
	return "Promote a single-year notice to a year range"
}

func (r *PromoteSingleYearRule) Description() string {
	return "Rewrites notice lines that name last year alone so they span last year through the current year. Only the exact single-year form matches; ranges ending in last year are handled by extend-year-range."
}

func (r *PromoteSingleYearRule) Compile(env rules.Env) (rules.Rewriter, error) {
	stale := fmt.Sprintf("Copyright (c) %d %s", env.LastYear, env.Holder)
	fresh := fmt.Sprintf("Copyright (c) %d-%d %s", env.LastYear, env.ThisYear, env.Holder)
	return rules.RewriterFunc(func(line string) (string, bool) {
		if !strings.Contains(line, stale) {
			return line, false
		}
		return strings.Replace(line, stale, fresh, 1), true
	}), nil
}

func init() {
	rules.Register(&PromoteSingleYearRule{})
}
