package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/accounts"
	"github.com/jonathan/resume-builder/internal/observability"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit stored accounts",
	Long:  "Checks every stored account against the account schema and checks that session flags agree with the current user. Nothing is repaired.",
	RunE:  withApp(runCheck),
}

var (
	checkJSON        bool
	checkParallelism int
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "Print the report as JSON")
	checkCmd.Flags().IntVar(&checkParallelism, "parallelism", accounts.DefaultAuditParallelism, "Records checked concurrently")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string, a *app) error {
	report, err := a.accounts.Audit(cmd.Context(), checkParallelism)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if checkJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
	} else {
		observability.NewPrinter(out).PrintAudit(report)
	}

	if !report.OK() {
		return fmt.Errorf("audit found %d issue(s)", len(report.Issues))
	}
	return nil
}
