package cli

import (
	"copymedic/internal/engine"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report stale copyright notices without rewriting anything",
	Long: `Report the copyright notices an update run would rewrite, without touching
any file.

check is the CI twin of update: it walks the same tree with the same
rules, reports each stale notice as OUTDATED, and flags the anomalies that
would remain after an update. The tree is never written to.

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
	0 = every notice is current
	1 = stale notices and/or anomalies found
	2 = fatal error (invalid flags or an unreadable tree aborted the run)

Examples:
  # Gate a pull request on current notices
  copymedic check --root .

  # Ignore vendored trees when deciding pass/fail
  copymedic check --ignore-anomaly "vendor,third_party/*"
`,
	Run: func(cmd *cobra.Command, args []string) {
		runEngine(cmd, engine.ModeCheck)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetHelpTemplate(runHelpTemplate)
	addRunFlags(checkCmd)
}
