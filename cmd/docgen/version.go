package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/docgen/analyzer"
	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/config"
)

const styleSample = `def calculate_total(items: list, tax_rate: float = 0.2) -> float:
    if not items:
        raise ValueError("no items")
    return sum(items) * (1 + tax_rate)
`

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docgen %s\n", Version)
		},
	}
}

func (h *Handler) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List docstring styles with a rendered sample",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, style := range docstring.Styles() {
				results, err := analyzer.New(analyzer.WithStyle(style)).Analyze(context.Background(), "", []byte(styleSample))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n%s\n\n", style, strings.Repeat("-", len(style)), results[0].Docstring)
			}
			return nil
		},
	}
}

func (h *Handler) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List configuration presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.Presets() {
				cfg, err := config.Preset(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-14s metrics: %-5v suggestions: %-5v verbose: %-5v methods: %-5v minQuality: %.0f\n",
					name, cfg.ShowMetrics, cfg.Suggestions, cfg.Verbose, cfg.IncludeMethods, cfg.MinQuality)
			}
			return nil
		},
	}
}
