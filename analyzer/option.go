package analyzer

import (
	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/docgen"
	"github.com/viant/docgen/analyzer/docstring"
	"github.com/viant/docgen/inspector/repository"
)

type Option func(*Analyzer)

// WithStyle sets docstring style
func WithStyle(style docstring.Style) Option {
	return func(a *Analyzer) {
		a.builder = docstring.NewBuilder(style)
	}
}

// WithCounters sets session counters shared across analyzers
func WithCounters(counters *docgen.Counters) Option {
	return func(a *Analyzer) {
		if counters != nil {
			a.counters = counters
		}
	}
}

// WithLogger sets logger used for debug events
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithIncludeMethods emits per-method results in addition to classes and functions
func WithIncludeMethods(flag bool) Option {
	return func(a *Analyzer) {
		a.includeMethods = flag
	}
}

// WithFS sets file system used to read sources
func WithFS(fs afs.Service) Option {
	return func(a *Analyzer) {
		a.fs = fs
	}
}

// WithFinder sets source finder used by AnalyzeProject
func WithFinder(finder *repository.Finder) Option {
	return func(a *Analyzer) {
		a.finder = finder
	}
}

// WithWorkers sets number of files analyzed concurrently
func WithWorkers(workers int) Option {
	return func(a *Analyzer) {
		if workers > 0 {
			a.workers = workers
		}
	}
}

// WithFailFast stops project analysis on the first file error
func WithFailFast(flag bool) Option {
	return func(a *Analyzer) {
		a.failFast = flag
	}
}
