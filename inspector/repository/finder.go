package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
)

// DefaultExcludes lists directories skipped during discovery
var DefaultExcludes = []string{"__pycache__", ".git", ".venv", "venv", "env", ".tox", "build", "dist"}

// Finder discovers Python sources under a location
type Finder struct {
	fs        afs.Service
	excludes  []string
	gitIgnore bool
}

// NewFinder creates a finder, DefaultExcludes are used when no exclusion is supplied
func NewFinder(fs afs.Service, excludes ...string) *Finder {
	if fs == nil {
		fs = afs.New()
	}
	if len(excludes) == 0 {
		excludes = DefaultExcludes
	}
	return &Finder{fs: fs, excludes: excludes, gitIgnore: true}
}

// UseGitIgnore toggles .gitignore support
func (f *Finder) UseGitIgnore(flag bool) *Finder {
	f.gitIgnore = flag
	return f
}

// IsSource returns true for python source files
func IsSource(name string) bool {
	return strings.HasSuffix(name, ".py")
}

// Find returns sorted URLs of Python sources under location; a source file location is returned as is
func (f *Finder) Find(ctx context.Context, location string) ([]string, error) {
	object, err := f.fs.Object(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to locate %s: %w", location, err)
	}
	if !object.IsDir() {
		return []string{location}, nil
	}
	matchers := []*ignore.GitIgnore{ignore.CompileIgnoreLines(f.excludes...)}
	if f.gitIgnore {
		if matcher := f.loadGitIgnore(ctx, location); matcher != nil {
			matchers = append(matchers, matcher)
		}
	}
	excluded := func(rel string, isDir bool) bool {
		for _, matcher := range matchers {
			if matcher.MatchesPath(rel) || (isDir && matcher.MatchesPath(rel+"/")) {
				return true
			}
		}
		return false
	}
	var result []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		rel := path.Join(parent, info.Name())
		if excluded(rel, info.IsDir()) {
			return false, nil
		}
		if info.IsDir() {
			return true, nil
		}
		if IsSource(info.Name()) {
			result = append(result, url.Join(baseURL, rel))
		}
		return true, nil
	}
	if err := f.fs.Walk(ctx, location, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", location, err)
	}
	sort.Strings(result)
	return result, nil
}

func (f *Finder) loadGitIgnore(ctx context.Context, location string) *ignore.GitIgnore {
	URL := url.Join(location, ".gitignore")
	if ok, _ := f.fs.Exists(ctx, URL); !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}
