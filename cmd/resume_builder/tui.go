package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/feedback"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Sign in or create an account interactively",
	RunE:  withApp(runTUI),
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string, a *app) error {
	rec := feedback.NewRecorder()
	ui := tui.New(a.auth(rec), rec, a.log)

	if _, err := ui.LoginFlow(cmd.Context()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Bye")
			return nil
		}
		return err
	}

	acct, err := a.requireSession(cmd)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAccount(acct.ID, acct.Record)
	return nil
}
