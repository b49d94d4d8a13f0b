// Package main provides the resume_builder command-line tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Build a resume from the terminal",
	Long: "resume_builder keeps local accounts, each with one resume. Register and sign in, " +
		"edit the resume field by field, preview it and export it to PDF.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	configPath    string
	storageDriver string
	storagePath   string
	logLevel      string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&storageDriver, "storage-driver", "", "Storage backend: file, sqlite, postgres or memory")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage-path", "", "Data file for the file and sqlite backends")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
