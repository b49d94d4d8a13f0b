package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/types"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Show or edit the signed-in account's resume",
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resume preview",
	Long:  "Prints the resume preview. Without a signed-in account an empty preview is shown.",
	RunE:  withApp(runResumeShow),
}

var resumeSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set one resume field",
	Long: "Sets one resume field and saves the resume. Fields: " + strings.Join(resume.Fields(), ", ") +
		". Email, phone and linkedin are checked as they are set; invalid values are reported but still saved.",
	Args: cobra.ExactArgs(2),
	RunE: withApp(runResumeSet),
}

var (
	resumeShowCopy     bool
	resumeShowJSON     bool
	resumeShowTemplate string
)

func init() {
	resumeShowCmd.Flags().BoolVar(&resumeShowCopy, "copy", false, "Copy the plain-text preview to the clipboard")
	resumeShowCmd.Flags().BoolVar(&resumeShowJSON, "json", false, "Print the stored resume document as JSON")
	resumeShowCmd.Flags().StringVarP(&resumeShowTemplate, "template", "t", "", "Render with this HTML template instead of the built-in one")

	resumeCmd.AddCommand(resumeShowCmd, resumeSetCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeShow(cmd *cobra.Command, _ []string, a *app) error {
	doc, _, err := a.session.LoadResume(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	out := cmd.OutOrStdout()
	if resumeShowJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resume: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	text, err := previewText(doc, resumeShowTemplate)
	if err != nil {
		return err
	}
	observability.NewPrinter(out).PrintPreview(text)

	if resumeShowCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		_, _ = fmt.Fprintln(out, "Copied to clipboard")
	}
	return nil
}

func previewText(doc types.ResumeDocument, templatePath string) (string, error) {
	var (
		html string
		err  error
	)
	if templatePath != "" {
		html, err = rendering.RenderHTMLFile(doc, templatePath)
	} else {
		html, err = rendering.RenderHTML(doc)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render preview: %w", err)
	}
	return rendering.PlainText(html)
}

func runResumeSet(cmd *cobra.Command, args []string, a *app) error {
	ed, err := a.editor(cmd)
	if err != nil {
		return err
	}
	if _, err := ed.SetField(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
	return nil
}
