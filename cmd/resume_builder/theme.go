package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/service"
)

var themeCmd = &cobra.Command{
	Use:       "theme <" + strings.Join(service.Themes, "|") + ">",
	Short:     "Set the signed-in account's theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: service.Themes,
	RunE:      withApp(runTheme),
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(cmd *cobra.Command, args []string, a *app) error {
	if _, err := a.requireSession(cmd); err != nil {
		return err
	}
	if _, err := a.session.SetTheme(cmd.Context(), args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", args[0])
	return nil
}
