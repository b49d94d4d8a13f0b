package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  withApp(runWhoami),
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string, a *app) error {
	acct, ok, err := a.session.Restore(cmd.Context())
	if err != nil {
		return err
	}
	if !ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
		return nil
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAccount(acct.ID, acct.Record)
	return nil
}
