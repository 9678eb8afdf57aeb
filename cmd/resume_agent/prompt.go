package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-drafter/internal/parsing"
	"github.com/jonathan/resume-drafter/internal/prompts"
	"github.com/jonathan/resume-drafter/internal/types"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Render the drafting instructions for a generation service",
	Long:  "Render the system and user prompt that ask a generation service for a draft matching schemas/generated_draft.schema.json.",
	RunE:  runPrompt,
}

var (
	promptForm       string
	promptSystemOnly bool
)

func init() {
	promptCmd.Flags().StringVarP(&promptForm, "form", "f", "", "Path to form JSON (required unless --system-only)")
	promptCmd.Flags().BoolVar(&promptSystemOnly, "system-only", false, "Print only the system prompt")

	rootCmd.AddCommand(promptCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runPrompt(_ *cobra.Command, _ []string) error {
	if promptSystemOnly {
		fmt.Fprintln(os.Stdout, prompts.SystemPrompt())
		return nil
	}
	if promptForm == "" {
		return fmt.Errorf("--form is required unless --system-only is set")
	}

	tables, err := loadTables(keywordsPath)
	if err != nil {
		return err
	}
	form, err := loadCheckedForm(promptForm, newLogger())
	if err != nil {
		return err
	}

	var parsed types.ParsedResumeSections
	if text := form.Attachments.ExistingResumeText; text != "" {
		parsed = parsing.ExtractFromResumeText(text, tables)
	}

	fmt.Fprintln(os.Stdout, prompts.SystemPrompt())
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, prompts.BuildDraftPrompt(*form, parsed))
	return nil
}
