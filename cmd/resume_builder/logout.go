package main

import (
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current account",
	RunE:  withApp(runLogout),
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, _ []string, a *app) error {
	return a.auth(a.fb).Logout(cmd.Context())
}
