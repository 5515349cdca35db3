package engine

import (
	"fmt"
	"os"
	"time"

	"copymedic/internal/config"
	"copymedic/internal/output"
	"copymedic/internal/rules"
)

// Mode selects what a run does with the lines the rules match: rewrite them
// in place, or only report them.
type Mode string

const (
	ModeUpdate Mode = "update"
	ModeCheck  Mode = "check"
)

func exitCodeForRun(fatal, findings bool, mode Mode) int {
	// Exit code contract (documented in command help):
	// 0 = clean run (update treats residual anomalies as advisory)
	// 1 = findings (check mode only: outdated lines and/or anomalies)
	// 2 = fatal error (run aborted)
	if fatal {
		return 2
	}
	if findings && mode == ModeCheck {
		return 1
	}
	return 0
}

func setupOutputManager(cfg *config.Config, mode Mode) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	if !cfg.Output.NoConsole {
		filter := cfg.Output.ConsoleFilterStatus
		if len(filter) == 0 && cfg.Output.ConsoleFormat == "text" {
			filter = defaultConsoleFilter(mode, cfg.Runtime.Verbose)
		}
		if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.ConsoleFormat, filter)); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Emit Sinks (additional structured streams)
	for _, emit := range cfg.Output.Emit {
		es, err := output.NewEmitSink(os.Stdout, emit)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(es); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	// Report Sink
	if cfg.Output.Report != "" {
		rs, err := output.NewReportSink(cfg.Output.Report)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(rs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// defaultConsoleFilter keeps the text console quiet by default: an update
// run prints the announcement plus anomalies and errors, and check adds the
// outdated lines it exists to find. Verbose shows every status. Structured
// formats (json/ndjson) are never filtered implicitly.
func defaultConsoleFilter(mode Mode, verbose bool) []string {
	if verbose {
		return nil
	}
	if mode == ModeCheck {
		return []string{"OUTDATED", "ANOMALY", "ERROR"}
	}
	return []string{"ANOMALY", "ERROR"}
}

// compiledRule pairs a rule ID with its rewriter for this run's years and
// holder. Slice order is application order.
type compiledRule struct {
	id string
	rw rules.Rewriter
}

type Engine struct {
	// now is a test seam for the run clock. If nil, time.Now is used.
	now func() time.Time

	// out is a test seam for the output manager. If nil, sinks are built
	// from the config.
	out *output.Manager
}

func NewEngine() *Engine {
	return &Engine{}
}

// resolveEnv fixes the run's years and holder. Years are derived exactly
// once: a run that crosses midnight on New Year's Eve keeps the years it
// started with.
func (e *Engine) resolveEnv(cfg *config.Config) rules.Env {
	year := cfg.Notice.Year
	if year == 0 {
		now := time.Now
		if e.now != nil {
			now = e.now
		}
		year = now().Year()
	}
	return rules.Env{ThisYear: year, LastYear: year - 1, Holder: cfg.Notice.Holder}
}

func resolveRules(cfg *config.Config, env rules.Env) ([]compiledRule, bool) {
	selected, err := rules.Resolve(cfg.Rules.Selector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving rules: %v\n", err)
		return nil, false
	}

	compiled := make([]compiledRule, 0, len(selected))
	for _, r := range selected {
		rw, err := r.Compile(env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error compiling rule %s: %v\n", r.ID(), err)
			return nil, false
		}
		compiled = append(compiled, compiledRule{id: r.ID(), rw: rw})
	}
	return compiled, true
}

func maybeDryRun(cfg *config.Config, files []string) (int, bool) {
	if !cfg.Target.DryRun {
		return 0, false
	}

	fmt.Println("Files that would be processed:")
	for _, f := range files {
		fmt.Println(f)
	}
	return 0, true
}

// Run executes one update or check run over the configured tree and
// returns the process exit code. The run is strictly sequential: one file
// at a time, the rewrite pass completing before the residual scan starts.
func (e *Engine) Run(cfg *config.Config, mode Mode) int {
	env := e.resolveEnv(cfg)

	compiled, ok := resolveRules(cfg, env)
	if !ok {
		return exitCodeForRun(true, false, mode)
	}

	files, err := EnumerateFiles(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error enumerating files: %v\n", err)
		return exitCodeForRun(true, false, mode)
	}
	if !cfg.Output.NoConsole {
		fmt.Fprintf(os.Stderr, "Found %d files under %s.\n", len(files), cfg.Target.Root)
	}

	if code, ok := maybeDryRun(cfg, files); ok {
		return code
	}

	outMgr := e.out
	if outMgr == nil {
		outMgr, err = setupOutputManager(cfg, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
			return exitCodeForRun(true, false, mode)
		}
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{
		Type:     "run.started",
		Mode:     string(mode),
		Root:     cfg.Target.Root,
		Holder:   env.Holder,
		FromYear: env.LastYear,
		ToYear:   env.ThisYear,
		Files:    len(files),
		Rules:    len(compiled),
	})

	ignore := &rules.IgnoreList{Patterns: cfg.Target.IgnoreAnomalies}

	var findings bool
	var fatal bool
	switch mode {
	case ModeUpdate:
		findings, fatal = runUpdate(cfg.Target.Root, files, compiled, env, ignore, outMgr)
	case ModeCheck:
		findings, fatal = runCheck(cfg.Target.Root, files, compiled, env, ignore, outMgr)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fatal = true
	}

	code := exitCodeForRun(fatal, findings, mode)
	_ = outMgr.Write(output.Event{Type: "run.finished", ExitCode: code})
	return code
}
