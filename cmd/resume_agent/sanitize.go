package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-drafter/internal/sanitize"
	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/spf13/cobra"
)

var sanitizeCmd = &cobra.Command{
	Use:   "sanitize",
	Short: "Check a piece of narrative text for personal details",
	Long: `Clean a summary, bullet, heading or comma-separated skill list the way drafts are cleaned.
Text that mentions the candidate's name, email, phone or profile handles is rejected.`,
	RunE: runSanitize,
}

var (
	sanitizeForm string
	sanitizeText string
	sanitizeKind string
)

func init() {
	sanitizeCmd.Flags().StringVarP(&sanitizeForm, "form", "f", "", "Path to form JSON supplying the personal details (optional)")
	sanitizeCmd.Flags().StringVar(&sanitizeText, "text", "", "Text to clean (required)")
	sanitizeCmd.Flags().StringVar(&sanitizeKind, "kind", "bullet", "Kind of text: summary, bullet, heading or skills")

	_ = sanitizeCmd.MarkFlagRequired("text")

	rootCmd.AddCommand(sanitizeCmd)
}

func runSanitize(_ *cobra.Command, _ []string) error {
	tables, err := loadTables(keywordsPath)
	if err != nil {
		return err
	}

	var basics types.Basics
	if sanitizeForm != "" {
		form, err := loadCheckedForm(sanitizeForm, newLogger())
		if err != nil {
			return err
		}
		basics = form.Basics
	}
	s := sanitize.New(basics, tables)

	var cleaned string
	switch sanitizeKind {
	case "summary":
		cleaned = s.CleanSummary(sanitizeText)
	case "bullet":
		cleaned = s.Narrative(sanitizeText, sanitize.BulletLimit)
	case "heading":
		cleaned = s.Heading(sanitizeText)
	case "skills":
		cleaned = strings.Join(s.FilterSkills(strings.Split(sanitizeText, ",")), ", ")
	default:
		return fmt.Errorf("unknown --kind %q; use summary, bullet, heading or skills", sanitizeKind)
	}

	if cleaned == "" {
		return fmt.Errorf("text rejected by sanitizer")
	}
	_, err = fmt.Fprintln(os.Stdout, cleaned)
	return err
}
