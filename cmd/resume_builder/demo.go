package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/resume"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Store the sample resume",
	Long:  "Stores the sample resume for later use. With --load it also replaces the signed-in account's resume with it.",
	RunE:  withApp(runDemo),
}

var demoLoad bool

func init() {
	demoCmd.Flags().BoolVar(&demoLoad, "load", false, "Load the sample into the signed-in account's resume")

	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, _ []string, a *app) error {
	ctx := cmd.Context()
	if err := a.accounts.SetSampleResume(ctx, resume.SampleDocument()); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sample resume stored")

	if !demoLoad {
		return nil
	}

	ed, err := a.editor(cmd)
	if err != nil {
		return err
	}
	if _, err := ed.LoadSample(ctx, a.accounts); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Sample resume loaded")
	return nil
}
