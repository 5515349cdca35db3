package flags

// Package flags defines canonical CLI flag names shared across the CLI and
// config file handling. Keeping these as constants helps avoid drift between
// Cobra flag wiring and other code paths that need to reference flags (e.g.
// checking whether a flag was set before letting the config file fill it in).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Target.Root, flags.FlagRoot, ".", "...")
//	arg := "--" + flags.FlagRoot
const (
	// Target
	FlagRoot          = "root"
	FlagExcludeDir    = "exclude-dir"
	FlagExcludeFile   = "exclude-file"
	FlagIgnoreAnomaly = "ignore-anomaly"
	FlagDryRun        = "dry-run"
	FlagConfig        = "config"

	// Notice
	FlagHolder = "holder"
	FlagYear   = "year"

	// Rules
	FlagRules = "rules"

	// Output
	FlagConsoleFormat       = "console-format"
	FlagConsoleFilterStatus = "console-filter-status"
	FlagReport              = "report"
	FlagOut                 = "out"
	FlagOutFormat           = "out-format"
	FlagEmit                = "emit"
	FlagNoConsole           = "no-console"

	// Runtime
	FlagVerbose = "verbose"
)
