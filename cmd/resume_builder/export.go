package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume to PDF",
	Long:  "Prints the resume preview to <Name>_Resume.pdf (letter, half-inch margins) using headless Chrome.",
	RunE:  withApp(runExport),
}

var exportOutDir string

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (default from config export.dir)")

	rootCmd.AddCommand(exportCmd)
}

// newExporter is replaced in tests.
var newExporter = func(a *app) export.Exporter {
	return export.NewChromeExporter(export.Options{
		Timeout:    a.cfg.Export.Timeout.Std(),
		ChromePath: a.cfg.Export.ChromePath,
	}, a.log)
}

func runExport(cmd *cobra.Command, _ []string, a *app) error {
	ed, err := a.editor(cmd)
	if err != nil {
		return err
	}

	dir := exportOutDir
	if dir == "" {
		dir = a.cfg.Export.Dir
	}

	res, err := export.Download(cmd.Context(), newExporter(a), ed.Document(), dir, a.fb)
	if err != nil {
		if errors.Is(err, export.ErrNameRequired) {
			return fmt.Errorf("set a name first: resume_builder resume set name \"Your Name\"")
		}
		return err
	}

	a.log.Info().Str("path", res.Path).Int("pages", res.Pages).Msg("resume exported")
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%d %s)\n", res.Path, res.Pages, pluralPage(res.Pages))
	return nil
}

func pluralPage(n int) string {
	if n == 1 {
		return "page"
	}
	return "pages"
	return nil
}
