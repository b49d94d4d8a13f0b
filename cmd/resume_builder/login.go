package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/service"
	"github.com/jonathan/resume-builder/internal/validation"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to an account",
	RunE:  withApp(runLogin),
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Email address (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")

	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}

var errLoginFailed = errors.New("login failed")

func runLogin(cmd *cobra.Command, _ []string, a *app) error {
	if err := a.auth(a.fb).Login(cmd.Context(), loginEmail, loginPassword); err != nil {
		if isFieldError(err) {
			return errLoginFailed
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

// isFieldError reports whether err is a validation outcome already shown to
// the user through feedback.
func isFieldError(err error) bool {
	var fields *validation.FieldErrors
	var creds *service.ErrInvalidCredentials
	return errors.As(err, &fields) || errors.As(err, &creds)
}
