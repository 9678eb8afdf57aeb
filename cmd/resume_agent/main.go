// Package main provides the entry point for the Resume Drafter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "resume_agent",
	Short:        "Resume Drafter CLI",
	Long:         "Resume Drafter turns form data, an existing résumé and a job description into a tailored, deduplicated résumé draft.",
	SilenceUsage: true,
}

var (
	verbose      bool
	keywordsPath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&keywordsPath, "keywords", "", "Path to a YAML file extending the keyword tables (defaults to RESUME_KEYWORDS env var)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
