package rules

// Env is the compile context for a run: the year pair being advanced and
// the holder token a notice must name. It is fixed once, before any file is
// touched, and shared by every rule in the run.
type Env struct {
	ThisYear int
	LastYear int
	Holder   string
}

// Rewriter is a rule compiled against a concrete Env. Rewrite receives one
// line without its terminator and returns the rewritten line and whether
// the rule matched.
type Rewriter interface {
	Rewrite(line string) (string, bool)
}

// RewriterFunc adapts a plain function to the Rewriter interface.
type RewriterFunc func(line string) (string, bool)

func (f RewriterFunc) Rewrite(line string) (string, bool) { return f(line) }

type Rule interface {
	ID() string
	Title() string
	Description() string

	// Compile binds the rule to a run's years and holder. Compiled
	// rewriters MUST be pure line functions: no filesystem access, no
	// state carried between lines.
	Compile(env Env) (Rewriter, error)
}
