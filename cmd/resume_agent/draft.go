package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-drafter/internal/config"
	"github.com/jonathan/resume-drafter/internal/drafting"
	"github.com/jonathan/resume-drafter/internal/pipeline"
	"github.com/jonathan/resume-drafter/internal/rewriting"
	"github.com/spf13/cobra"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Generate a tailored résumé draft from a form",
	Long: `Builds a draft from a form file: parses any existing résumé text, scores it against the job description,
rewrites bullets and assembles a deduplicated, sanitized draft. With --draft, a previously generated draft is
validated against the draft schema and reconciled with the form; an invalid draft falls back to local synthesis.
With --batch, every *.json form in a directory is drafted in parallel.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runDraft,
}

var (
	draftConfigPath   string
	draftForm         string
	draftExternal     string
	draftBatchDir     string
	draftOut          string
	draftFoldProjects bool
	draftSeed         uint64
	draftTimeout      int
	draftRetries      int
	draftConcurrency  int
)

func init() {
	// Config file flag (processed first)
	draftCmd.Flags().StringVar(&draftConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	draftCmd.Flags().StringVarP(&draftForm, "form", "f", "", "Path to form JSON (mutually exclusive with --batch)")
	draftCmd.Flags().StringVar(&draftExternal, "draft", "", "Path to a previously generated draft to reconcile")
	draftCmd.Flags().StringVar(&draftBatchDir, "batch", "", "Directory of form JSON files to draft in parallel")
	draftCmd.Flags().StringVarP(&draftOut, "out", "o", "", "Output file, or output directory with --batch (defaults to stdout)")
	draftCmd.Flags().BoolVar(&draftFoldProjects, "fold-projects", false, "Fold project highlights into the experience section")
	draftCmd.Flags().Uint64Var(&draftSeed, "seed", 0, "Seed for varied lead verbs (0 always picks the first verb)")
	draftCmd.Flags().IntVar(&draftTimeout, "timeout", 0, "Seconds allowed for reading the generated draft")
	draftCmd.Flags().IntVar(&draftRetries, "retries", 0, "Extra attempts when the generated draft is unusable")
	draftCmd.Flags().IntVar(&draftConcurrency, "concurrency", 0, "Forms drafted at once with --batch")

	rootCmd.AddCommand(draftCmd)
}

func runDraft(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Step 1: Load config file if provided
	var cfg config.Config
	if draftConfigPath != "" {
		loadedCfg, err := config.LoadConfig(draftConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	flags := cmd.Flags()
	if flags.Changed("form") {
		cfg.Form = draftForm
	}
	if flags.Changed("draft") {
		cfg.Draft = draftExternal
	}
	if flags.Changed("out") && draftBatchDir != "" {
		cfg.OutDir = draftOut
	}
	if flags.Changed("fold-projects") {
		cfg.FoldProjects = draftFoldProjects
	}
	if flags.Changed("seed") {
		cfg.Seed = draftSeed
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = draftTimeout
	}
	if flags.Changed("retries") {
		cfg.Retries = draftRetries
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = draftConcurrency
	}
	if flags.Changed("keywords") || cfg.Keywords == "" {
		cfg.Keywords = keywordsPath
	}
	cfg.Verbose = cfg.Verbose || verbose

	// Step 3: Validate and apply defaults for unset values
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{})
	if cfg.Form == "" && draftBatchDir == "" {
		return fmt.Errorf("either --form or --batch must be provided (via flag or config)")
	}
	if cfg.Form != "" && draftBatchDir != "" {
		return fmt.Errorf("--form and --batch are mutually exclusive; provide only one")
	}
	if draftBatchDir != "" && cfg.Draft != "" {
		return fmt.Errorf("--draft applies to a single form and cannot be combined with --batch")
	}

	tables, err := loadTables(cfg.Keywords)
	if err != nil {
		return err
	}

	logger := newLogger()
	opts := pipeline.RunOptions{
		Drafting: drafting.Options{
			Tables:       tables,
			FoldProjects: cfg.FoldProjects,
		},
		Timeout: cfg.Timeout(),
		Retries: cfg.Retries,
		Logger:  logger,
	}
	if cfg.Seed != 0 {
		opts.Drafting.Picker = rewriting.NewSeededPicker(cfg.Seed)
	}
	if cfg.Draft != "" {
		opts.Source = pipeline.FileSource{Path: cfg.Draft}
	}

	if draftBatchDir != "" {
		return runDraftBatch(ctx, draftBatchDir, cfg, opts)
	}

	form, err := loadCheckedForm(cfg.Form, logger)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(ctx, *form, opts)
	if err != nil {
		return fmt.Errorf("drafting failed: %w", err)
	}
	if cfg.Draft != "" && res.Origin != pipeline.OriginExternal {
		logger.Warn("generated draft was not used", "file", cfg.Draft, "err", res.SourceErr)
	}
	if cfg.Verbose {
		printer().PrintDraft(&res.Draft)
	}
	return writeJSON(draftOut, res.Draft)
}

func runDraftBatch(ctx context.Context, dir string, cfg config.Config, opts pipeline.RunOptions) error {
	if cfg.OutDir == "" {
		return fmt.Errorf("--out directory is required with --batch")
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to list forms: %w", err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no form files found in %s", dir)
	}
	sort.Strings(paths)

	items := make([]pipeline.BatchItem, 0, len(paths))
	for _, path := range paths {
		form, err := loadCheckedForm(path, opts.Logger)
		if err != nil {
			return fmt.Errorf("form %s: %w", filepath.Base(path), err)
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		items = append(items, pipeline.BatchItem{Name: name, Form: *form})
	}

	results, err := pipeline.RunBatch(ctx, items, opts, cfg.Concurrency)
	if err != nil {
		return err
	}

	for _, r := range results {
		out := filepath.Join(cfg.OutDir, r.Name+".draft.json")
		if err := writeJSON(out, r.Result.Draft); err != nil {
			return err
		}
		opts.Logger.Info("wrote draft", "form", r.Name, "file", out)
	}
	return nil
}
