package main

import (
	"fmt"

	"github.com/jonathan/resume-drafter/internal/ingestion"
	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/ranking"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score résumé keyword coverage against a job description",
	Long:  "Compute the 0-100 ATS keyword score of a résumé against a job description and list the matched keywords.",
	RunE:  runScore,
}

var (
	scoreJob      string
	scoreResume   string
	scoreKeywords []string
)

// scoreOutput mirrors the score fields of a generated draft
type scoreOutput struct {
	ATSScore        *int     `json:"atsScore"`
	MatchedKeywords []string `json:"matchedKeywords"`
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text or HTML file (required)")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to résumé text file (required)")
	scoreCmd.Flags().StringSliceVarP(&scoreKeywords, "keyword", "k", nil, "Extra keyword to require (repeatable)")

	_ = scoreCmd.MarkFlagRequired("job")
	_ = scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	tables, err := loadTables(keywordsPath)
	if err != nil {
		return err
	}

	job, _, err := ingestion.IngestFromFile(scoreJob)
	if err != nil {
		return fmt.Errorf("failed to ingest job description: %w", err)
	}
	resume, _, err := ingestion.IngestFromFile(scoreResume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	parsed := parsing.ExtractFromResumeText(resume, tables)
	result := ranking.Score(
		ranking.JobTokens(job, scoreKeywords, tables),
		ranking.ResumeTokens(parsed.Experience, parsed.Projects, parsed.Skills, tables),
	)
	if verbose {
		printer().PrintScore(result)
	}
	return writeJSON("", scoreOutput{ATSScore: result.Score, MatchedKeywords: result.Matched})
}
