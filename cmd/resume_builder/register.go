package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	Long:  "Creates a local account. The email identifies the account; the password needs at least 8 characters and medium strength.",
	RunE:  withApp(runRegister),
}

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Full name (required)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password (required)")

	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(registerCmd)
}

var errRegistrationFailed = errors.New("registration failed")

func runRegister(cmd *cobra.Command, _ []string, a *app) error {
	if err := a.auth(a.fb).Register(cmd.Context(), registerName, registerEmail, registerPassword); err != nil {
		if isFieldError(err) {
			return errRegistrationFailed
		}
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sign in with: resume_builder login --email", registerEmail)
	return nil
}
