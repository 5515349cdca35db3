package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"copymedic/internal/config"
	"copymedic/internal/engine"
	"copymedic/internal/flags"

	"github.com/spf13/cobra"
)

var (
	cfg        = config.New()
	configPath string

	// Extra patterns from the repeatable exclusion flags. They are folded
	// into cfg on top of the built-in lists, so the defaults keep applying
	// no matter what is passed.
	extraExcludeDirs  []string
	extraExcludeFiles []string
)

const runHelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}Usage:
  {{.UseLine}}

{{if .HasAvailableLocalFlags}}Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}{{if .HasAvailableInheritedFlags}}Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}

{{end}}Configuration file:
	CopyMedic reads optional defaults from .copymedic.yml in the target root,
	or from the file given via --config.

	Keys (all optional):
	  holder:            copyright holder name
	  year:              target year override
	  rules:             rule selector (comma-separated rule IDs)
	  exclude_dirs:      extra directory patterns to skip
	  exclude_files:     extra file patterns to skip
	  ignore_anomalies:  path patterns whose anomalies are suppressed

	Command-line flags take precedence over file values. Pattern lists are
	additive on top of the built-in exclusions.

  Example:
    # .copymedic.yml
    holder: Initech
    exclude_dirs: [node_modules, dist]
    ignore_anomalies: [vendor]

{{if .HasAvailableSubCommands}}Available Commands:
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasHelpSubCommands}}Additional help topics:
{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

{{end}}{{if .HasAvailableSubCommands}}Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rewrite stale copyright notices under a directory tree",
	Long: `Rewrite stale copyright notices in every file under a directory tree.

CopyMedic is line-oriented and byte-faithful: only lines carrying a matching
copyright notice change, line endings are preserved as found, and files
without matches are not rewritten at all.

Each line gets at most one rewrite. Rules are tried in ID order, first
match wins:
  extend-year-range    "Copyright (c) 2019-<last> <holder>" ends in the
                       target year instead
  promote-single-year  "Copyright (c) <last> <holder>" becomes the range
                       "<last>-<target>"

<last> is always the year before the target year, so a tree that missed
several years needs one run per missed year (or manual fixes; see
anomalies).

After the rewrite, the tree is scanned once more: every remaining notice
for the holder that does not carry the target year is printed as an
anomaly in file:line form for manual review. Anomalies are advisory and do
not change the exit code of an update run.

Output:
	Console output is controlled by --console-format (default: text).
	Structured outputs can be written via:
	- --out / --out-format: write an aggregate JSON array or NDJSON stream to a file
	- --emit: write an additional structured stream to stdout (json or ndjson)
	- --no-console: suppress the console sink (use with --emit/--out for machine output)

	NDJSON mode emits one JSON object per line. Objects are lifecycle Events with a
	"type" field (run.started, rule.result, run.finished). Rule results are
	represented as an Event with type "rule.result" carrying the result fields.

Exit codes:
	0 = run completed (residual anomalies are advisory)
	2 = fatal error (invalid flags or an unreadable tree aborted the run)

Examples:
  # Update the working tree (built-in exclusions apply)
  copymedic update

  # Another holder, explicit target year
  copymedic update --root ./src --holder Initech --year 2026

  # Preview which files a run would touch
  copymedic update --dry-run

	# AI Agent: stream machine-readable events to stdout
	copymedic update --no-console --emit ndjson
`,
	Run: func(cmd *cobra.Command, args []string) {
		runEngine(cmd, engine.ModeUpdate)
	},
}

func runEngine(cmd *cobra.Command, mode engine.Mode) {
	mergeExtraPatterns(cfg, extraExcludeDirs, extraExcludeFiles)

	if err := applyConfigFile(cmd, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	eng := engine.NewEngine()
	os.Exit(eng.Run(cfg, mode))
}

func mergeExtraPatterns(cfg *config.Config, dirs, files []string) {
	cfg.Target.ExcludeDirs = append(cfg.Target.ExcludeDirs, dirs...)
	cfg.Target.ExcludeFiles = append(cfg.Target.ExcludeFiles, files...)
}

// applyConfigFile folds .copymedic.yml values into cfg. Explicit
// command-line flags win over file values; pattern lists are additive so
// the built-in exclusions always stay in force.
func applyConfigFile(cmd *cobra.Command, cfg *config.Config) error {
	changed := func(name string) bool {
		return cmd != nil && cmd.Flags().Changed(name)
	}

	var path string
	if changed(flags.FlagConfig) {
		path = configPath
	} else {
		root := cfg.Target.Root
		if strings.TrimSpace(root) == "" {
			root = "."
		}
		path = filepath.Join(root, config.DefaultFileName)
	}

	file, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if file == nil {
		if changed(flags.FlagConfig) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return nil
	}

	if file.Holder != "" && !changed(flags.FlagHolder) {
		cfg.Notice.Holder = file.Holder
	}
	if file.Year != 0 && !changed(flags.FlagYear) {
		cfg.Notice.Year = file.Year
	}
	if file.Rules != "" && !changed(flags.FlagRules) {
		cfg.Rules.Selector = file.Rules
	}
	cfg.Target.ExcludeDirs = append(cfg.Target.ExcludeDirs, file.ExcludeDirs...)
	cfg.Target.ExcludeFiles = append(cfg.Target.ExcludeFiles, file.ExcludeFiles...)
	cfg.Target.IgnoreAnomalies = append(cfg.Target.IgnoreAnomalies, file.IgnoreAnomalies...)
	return nil
}

// addRunFlags registers the flag set shared by update and check. Both
// commands bind into the same package-level cfg; only one of them ever
// runs in a given process.
func addRunFlags(cmd *cobra.Command) {
	// MAINTAINER NOTE: If you add/change/remove any run-affecting flags here,
	// keep the config file keys in sync: internal/config/file.go and the
	// Configuration file section of runHelpTemplate.

	// Target
	cmd.Flags().StringVar(&cfg.Target.Root, flags.FlagRoot, ".", "Directory tree to process")
	cmd.Flags().StringSliceVar(&extraExcludeDirs, flags.FlagExcludeDir, nil, "Directory patterns to skip in addition to the built-ins (repeatable; comma-separated accepted). Go path.Match style, matched against the directory name")
	cmd.Flags().StringSliceVar(&extraExcludeFiles, flags.FlagExcludeFile, nil, "File patterns to skip in addition to the built-ins (repeatable; comma-separated accepted). Go path.Match style, matched against the file name")
	cmd.Flags().StringSliceVar(&cfg.Target.IgnoreAnomalies, flags.FlagIgnoreAnomaly, nil, "Suppress anomalies under matching paths (repeatable; comma-separated accepted). Patterns with '/' match the relative path, others match the file name or any directory on its path")
	cmd.Flags().BoolVar(&cfg.Target.DryRun, flags.FlagDryRun, false, "List the files a run would process and stop")
	cmd.Flags().StringVar(&configPath, flags.FlagConfig, "", "Config file path (default: .copymedic.yml in the target root)")

	// Notice
	cmd.Flags().StringVar(&cfg.Notice.Holder, flags.FlagHolder, cfg.Notice.Holder, "Copyright holder whose notices are maintained")
	cmd.Flags().IntVar(&cfg.Notice.Year, flags.FlagYear, 0, "Target year (default: the current system clock year)")

	// Rules
	cmd.Flags().StringVar(&cfg.Rules.Selector, flags.FlagRules, "", "Rule selector as comma-separated rule IDs (empty = all rules)")

	// Output
	cmd.Flags().StringVar(&cfg.Output.ConsoleFormat, flags.FlagConsoleFormat, "text", "Console output format: text|json|ndjson (default: text)")
	cmd.Flags().StringSliceVar(&cfg.Output.ConsoleFilterStatus, flags.FlagConsoleFilterStatus, nil, "Filter console output by status (UPDATED, OUTDATED, CURRENT, ANOMALY, ERROR). Comma-separated.")
	cmd.Flags().StringVar(&cfg.Output.Report, flags.FlagReport, "", "Write a Markdown report to this path")
	cmd.Flags().StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	cmd.Flags().StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	cmd.Flags().StringSliceVar(&cfg.Output.Emit, flags.FlagEmit, nil, "Emit additional structured stream to stdout: json|ndjson (repeatable; comma-separated accepted)")
	cmd.Flags().BoolVar(&cfg.Output.NoConsole, flags.FlagNoConsole, false, "Suppress console output (use with --emit/--out/--report)")
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.SetHelpTemplate(runHelpTemplate)
	addRunFlags(updateCmd)
}
