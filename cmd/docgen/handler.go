package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/docgen/config"
	"github.com/viant/docgen/logger"
)

// Version represents docgen release
const Version = "0.1.0"

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	preset     string
	rootCmd    *cobra.Command
}

// New creates a CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:           "docgen",
		Short:         "Python docstring synthesis and code quality analysis",
		Long:          "Analyzes Python sources to synthesize docstrings, complexity metrics and improvement suggestions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig(cmd)
		},
	}
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "", "Path to configuration file")
	h.rootCmd.PersistentFlags().StringVarP(&h.preset, "preset", "p", "", "Configuration preset (minimal, standard, comprehensive, production)")

	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.stylesCmd())
	h.rootCmd.AddCommand(h.presetsCmd())
	h.rootCmd.AddCommand(h.versionCmd())
}

func (h *Handler) loadConfig(cmd *cobra.Command) error {
	if h.preset != "" && h.configPath != "" {
		return fmt.Errorf("use either --config or --preset")
	}
	var err error
	if h.preset != "" {
		h.cfg, err = config.Preset(h.preset)
	} else {
		h.cfg, err = config.NewLoader(nil).Load(cmd.Context(), h.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err = logger.Init(h.cfg.Log.Level, h.cfg.Log.Format); err != nil {
		return err
	}
	logger.Debugf("configuration loaded, style: %v, format: %v", h.cfg.Style, h.cfg.Format)
	return nil
}

// Execute runs the CLI with supplied arguments
func (h *Handler) Execute(args ...string) error {
	h.rootCmd.SetArgs(args)
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	if err := New().Execute(os.Args[1:]...); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
