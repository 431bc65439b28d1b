package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"

	"github.com/viant/docgen"
	"github.com/viant/docgen/inspector/info"
	"github.com/viant/docgen/inspector/python"
	"golang.org/x/sync/errgroup"
)

// AnalyzeFile downloads and analyzes a single Python file
func (a *Analyzer) AnalyzeFile(ctx context.Context, URL string) (*info.File, []*docgen.Result, error) {
	code, err := a.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	results, err := a.Analyze(ctx, URL, code)
	if err != nil {
		return nil, nil, err
	}
	hash, err := info.Fingerprint(code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fingerprint %s: %w", URL, err)
	}
	lines := bytes.Count(code, []byte("\n"))
	if len(code) > 0 && code[len(code)-1] != '\n' {
		lines++
	}
	file := &info.File{
		Name:  path.Base(URL),
		Path:  URL,
		Hash:  hash,
		Lines: lines,
	}
	for _, result := range results {
		switch result.Kind {
		case docgen.KindClass:
			file.Classes = append(file.Classes, &info.Class{Name: result.Name, Location: info.Location{Line: result.Line}})
		default:
			file.Functions = append(file.Functions, &info.Function{Name: result.Name, Location: info.Location{Line: result.Line}})
		}
	}
	return file, results, nil
}

type fileOutcome struct {
	file    *info.File
	results []*docgen.Result
	err     error
}

// AnalyzeProject discovers Python sources under location and analyzes them concurrently;
// results keep discovery order and source order within each file
func (a *Analyzer) AnalyzeProject(ctx context.Context, location string) (*docgen.Report, error) {
	URLs, err := a.finder.Find(ctx, location)
	if err != nil {
		return nil, err
	}
	outcomes := make([]*fileOutcome, len(URLs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(a.workers)
	for i, URL := range URLs {
		group.Go(func() error {
			file, results, err := a.AnalyzeFile(groupCtx, URL)
			outcomes[i] = &fileOutcome{file: file, results: results, err: err}
			if err != nil {
				var syntaxErr *python.SyntaxError
				if errors.As(err, &syntaxErr) {
					a.logger.Warn().Str("path", URL).Int("line", syntaxErr.Line).Msg(syntaxErr.Message)
				} else {
					a.logger.Error().Err(err).Str("path", URL).Msg("failed to analyze file")
				}
				if a.failFast {
					return err
				}
			}
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	var results []*docgen.Result
	report := &docgen.Report{}
	for i, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		if outcome.err != nil {
			report.Failures = append(report.Failures, &docgen.FileFailure{Path: URLs[i], Error: outcome.err.Error()})
			continue
		}
		report.Files = append(report.Files, outcome.file)
		results = append(results, outcome.results...)
	}
	ret := docgen.NewReport(string(a.Style()), results)
	ret.Files = report.Files
	ret.Failures = report.Failures
	ret.Stats = a.counters.Snapshot()
	a.logger.Info().Int("files", len(URLs)).Int("elements", len(results)).Int("failures", len(ret.Failures)).Msg("analysis completed")
	return ret, nil
}
