package cli

import (
	"fmt"
	"io"

	"copymedic/internal/rules"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rulesListQuiet bool
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage and list rules",
	Long: `Manage CopyMedic rewrite rules.

This command group helps you discover which rules exist and what each rule
rewrites. Rules run during update and check (see "copymedic update --help").

Examples:
  # List all available rules
  copymedic rules list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rules",
	Long: `List all rules currently registered in this build.

Rules are sorted by rule ID. The sort order is also the order rules are
tried against each line during a run.

Examples:
  copymedic rules list

Output:
  A vertical list of rules:
    ----------------------------------------
    RULE: {ID}
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rList := rules.List()

		for _, r := range rList {
			if rulesListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), r.ID())
			} else {
				printRule(cmd.OutOrStdout(), r)
			}
		}
		return nil
	},
}

var rulesShowCmd = &cobra.Command{
	Use:   "show [rule-id]",
	Short: "Show details of a specific rule",
	Long: `Show details of a specific rule by its ID.

Examples:
  copymedic rules show extend-year-range
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rList, err := rules.Resolve(args[0])
		if err != nil {
			return err
		}
		if len(rList) == 0 {
			return fmt.Errorf("rule not found: %s", args[0])
		}
		printRule(cmd.OutOrStdout(), rList[0])
		return nil
	},
}

func printRule(w io.Writer, r rules.Rule) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "RULE: %s\n", r.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, r.Title())
	fmt.Fprintln(w, r.Description())
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesListCmd)
	rulesListCmd.Flags().BoolVarP(&rulesListQuiet, "quiet", "q", false, "Only print rule IDs")
	rulesCmd.AddCommand(rulesShowCmd)
}
