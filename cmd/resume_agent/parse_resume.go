package main

import (
	"fmt"

	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse résumé text into structured records",
	Long:  "Parse a plain-text or HTML résumé into summary, experience, projects, education and skills.",
	RunE:  runParseResume,
}

var (
	parseResumeInput string
	parseResumeOut   string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "text-file", "t", "", "Path to résumé text or HTML file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOut, "out", "o", "", "Output JSON file (defaults to stdout)")

	_ = parseResumeCmd.MarkFlagRequired("text-file")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	tables, err := loadTables(keywordsPath)
	if err != nil {
		return err
	}

	text, _, err := ingestion.IngestFromFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", parseResumeInput, err)
	}

	parsed := parsing.ExtractFromResumeText(text, tables)
	if verbose {
		printer().PrintParsedResume(&parsed)
	}
	return writeJSON(parseResumeOut, parsed)
}
