package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/docgen"
	"github.com/viant/docgen/analyzer"
	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/inspector/repository"
	"github.com/viant/docgen/logger"
	"github.com/viant/docgen/report"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		style          string
		format         string
		output         string
		minQuality     float64
		includeMethods bool
		workers        int
		failFast       bool
		showMetrics    bool
		verbose        bool
		noGitIgnore    bool
	)
	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze a Python file or directory",
		Long:  "Synthesizes docstrings, metrics and suggestions for every class and function found under path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := h.cfg
			flags := cmd.Flags()
			if flags.Changed("style") {
				cfg.Style = style
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("output") {
				cfg.Output = output
			}
			if flags.Changed("min-quality") {
				cfg.MinQuality = minQuality
			}
			if flags.Changed("include-methods") {
				cfg.IncludeMethods = includeMethods
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("fail-fast") {
				cfg.FailFast = failFast
			}
			if flags.Changed("show-metrics") {
				cfg.ShowMetrics = showMetrics
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if noGitIgnore {
				cfg.GitIgnore = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			docStyle, err := docstring.ParseStyle(cfg.Style)
			if err != nil {
				return err
			}
			outputFormat, err := report.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			location := args[0]
			ctx := cmd.Context()
			started := time.Now()
			fs := afs.New()
			finder := repository.NewFinder(fs, cfg.Excludes...).UseGitIgnore(cfg.GitIgnore)
			srv := analyzer.New(
				analyzer.WithStyle(docStyle),
				analyzer.WithLogger(logger.Logger()),
				analyzer.WithIncludeMethods(cfg.IncludeMethods),
				analyzer.WithFS(fs),
				analyzer.WithFinder(finder),
				analyzer.WithWorkers(cfg.Workers),
				analyzer.WithFailFast(cfg.FailFast),
			)
			analysis, err := srv.AnalyzeProject(ctx, location)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}
			if repo, err := repository.New().DetectRepository(location); err == nil {
				analysis.Project = repo.Info
				logger.Debugf("detected %v repository at %v", repo.Kind, repo.Root)
			} else {
				logger.Debugf("project detection skipped: %v", err)
			}
			analysis.Results = docgen.Filter(analysis.Results, cfg.MinQuality)
			if !cfg.Suggestions {
				for _, result := range analysis.Results {
					result.Suggestions = nil
				}
			}
			analysis.Summary = docgen.Summarize(analysis.Results)
			log := logger.Logger()
			log.Info().Str("path", location).Int("results", len(analysis.Results)).Dur("elapsed", time.Since(started)).Msg("analysis completed")

			data, err := report.Emit(analysis, outputFormat, &report.Options{ShowMetrics: cfg.ShowMetrics, Verbose: cfg.Verbose})
			if err != nil {
				return err
			}
			if cfg.Output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = report.Store(ctx, fs, cfg.Output, data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Results saved to: %s\n", cfg.Output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&style, "style", "s", "google", "Docstring style (google, numpy, sphinx)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format (console, json, yaml, markdown, html)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, results are written to stdout when empty")
	cmd.Flags().Float64Var(&minQuality, "min-quality", 0, "Minimum quality score to report (0-100)")
	cmd.Flags().BoolVar(&includeMethods, "include-methods", false, "Report methods in addition to classes and functions")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of files analyzed concurrently")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop on the first file that cannot be analyzed")
	cmd.Flags().BoolVar(&showMetrics, "show-metrics", true, "Show detailed code metrics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include suggestions in console output")
	cmd.Flags().BoolVar(&noGitIgnore, "no-gitignore", false, "Do not honor .gitignore during discovery")
	return cmd
}
