package main

import (
	"fmt"

	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/segment"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Split résumé text into classified blocks and sections",
	Long:  "Clean a text or HTML file, tag every line as heading, bullet or text, and group lines under their section headings.",
	RunE:  runSegment,
}

var (
	segmentInput string
	segmentOut   string
)

func init() {
	segmentCmd.Flags().StringVarP(&segmentInput, "text-file", "t", "", "Path to résumé text or HTML file (required)")
	segmentCmd.Flags().StringVarP(&segmentOut, "out", "o", "", "Output JSON file (defaults to stdout)")

	_ = segmentCmd.MarkFlagRequired("text-file")

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(_ *cobra.Command, _ []string) error {
	tables, err := loadTables(keywordsPath)
	if err != nil {
		return err
	}

	text, meta, err := ingestion.IngestFromFile(segmentInput)
	if err != nil {
		return fmt.Errorf("failed to ingest %s: %w", segmentInput, err)
	}
	if meta.Truncated {
		newLogger().Warn("input truncated", "file", segmentInput, "limit", ingestion.MaxChars)
	}

	result := segment.Segment(text, tables)
	if verbose {
		printer().PrintSegments(result.Sections)
	}
	return writeJSON(segmentOut, result)
}
