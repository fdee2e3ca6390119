// Package main provides the entry point for the resume document engine CLI
// and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prosumed",
	Short: "Resume and cover letter document engine",
	Long:  "prosumed renders structured resumes and cover letters through pluggable templates (PDF, DOCX, LaTeX, HTML) and scores them for ATS compatibility, as a CLI or a REST API server.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
