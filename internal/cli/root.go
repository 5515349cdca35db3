package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "copymedic",
	Short: "Keep copyright notices in a source tree on the current year",
	Long: `CopyMedic walks a source tree and rewrites stale copyright notices in place.

CopyMedic is line-oriented: it only ever touches lines carrying a matching
copyright notice and leaves every other byte of every file exactly as found.

Examples:
	# Show available commands and global flags
	copymedic --help

	# Update notices under the current directory
	copymedic update

	# Report stale notices without rewriting anything
	copymedic check

	# List rules
	copymedic rules list

	# Print build info
	copymedic version

Output:
	By default, commands write human-readable output to stdout.
	Some commands support structured output via emitter flags (see each command's --help).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.Runtime.Verbose, "verbose", false, "Show every result on the console, including current and rewritten lines")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
