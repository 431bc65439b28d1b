package repository

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/docgen/inspector/info"
	"golang.org/x/mod/modfile"
)

// Detector identifies project root folders and provides project-related information
type Detector struct {
	markers []string
	fs      afs.Service
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"pyproject.toml",   // PEP 621 or poetry projects
			"setup.py",         // setuptools projects
			"setup.cfg",        // declarative setuptools projects
			"requirements.txt", // pip projects
			"Pipfile",          // pipenv projects
			"go.mod",           // Go modules hosting Python tooling
			".git",             // Generic VCS marker
		},
	}
}

// DetectProject identifies the project root for the given file path and returns project info
func (d *Detector) DetectProject(filePath string, baseURL ...string) (*info.Project, error) {
	absPath, startDir, err := startDirectory(filePath)
	if err != nil {
		return nil, err
	}
	rootPath, projectType := d.findProjectRoot(startDir)
	project := &info.Project{
		Type:     "unknown",
		RootPath: absPath,
	}
	if rootPath == "" && len(baseURL) > 0 && baseURL[0] != "" {
		project.RootPath = baseURL[0]
	} else if rootPath != "" {
		project.RootPath = rootPath
		project.Type = projectType
	}
	relPath, err := filepath.Rel(project.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	project.RelativePath = filepath.ToSlash(relPath)
	if projectType != "" {
		project.Name = d.extractProjectName(rootPath, projectType)
	}
	return project, nil
}

// DetectRepository identifies the repository containing the given file path
func (d *Detector) DetectRepository(filePath string) (*Repository, error) {
	_, startDir, err := startDirectory(filePath)
	if err != nil {
		return nil, err
	}
	project, err := d.DetectProject(filePath)
	if err != nil {
		return nil, err
	}
	if gitRoot := d.findGitRoot(startDir); gitRoot != "" {
		project.Origin = d.extractGitOrigin(gitRoot)
		return &Repository{Kind: "git", Root: gitRoot, Origin: project.Origin, Info: project}, nil
	}
	return &Repository{Kind: project.Type, Root: project.RootPath, Info: project}, nil
}

func startDirectory(filePath string) (string, string, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", "", err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return "", "", err
	}
	if fileInfo.IsDir() {
		return absPath, absPath, nil
	}
	return absPath, filepath.Dir(absPath), nil
}

// findProjectRoot searches up from the current directory for project markers
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	for dir := startDir; ; {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, determineProjectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ""
		}
		dir = parent
	}
}

// findGitRoot finds the root of the git repository containing the given directory
func (d *Detector) findGitRoot(startDir string) string {
	homeDir := os.Getenv("HOME")
	for dir := startDir; ; {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			return ""
		}
		dir = parent
	}
}

var originURL = regexp.MustCompile(`\[remote "origin"\][^\[]*?url\s*=\s*(\S+)`)

// extractGitOrigin extracts the origin URL from git config
func (d *Detector) extractGitOrigin(gitRoot string) string {
	data := d.read(filepath.Join(gitRoot, ".git", "config"))
	if matches := originURL.FindSubmatch(data); len(matches) == 2 {
		return string(matches[1])
	}
	return ""
}

// extractProjectName attempts to extract a project name from configuration files
func (d *Detector) extractProjectName(rootPath string, projectType string) string {
	switch projectType {
	case "go":
		return d.extractGoModuleName(filepath.Join(rootPath, "go.mod"))
	case "python":
		if name := extractPyProjectName(d.read(filepath.Join(rootPath, "pyproject.toml"))); name != "" {
			return name
		}
		if name := extractSetupName(d.read(filepath.Join(rootPath, "setup.py"))); name != "" {
			return name
		}
		if name := extractSetupName(d.read(filepath.Join(rootPath, "setup.cfg"))); name != "" {
			return name
		}
	case "git":
		if origin := d.extractGitOrigin(rootPath); origin != "" {
			return strings.TrimSuffix(filepath.Base(origin), ".git")
		}
	}
	return filepath.Base(rootPath)
}

func (d *Detector) read(location string) []byte {
	if _, err := os.Stat(location); err != nil {
		return nil
	}
	data, err := d.fs.DownloadWithURL(context.Background(), location)
	if err != nil {
		return nil
	}
	return data
}

func (d *Detector) extractGoModuleName(goModPath string) string {
	if content := d.read(goModPath); len(content) > 0 {
		if mod, _ := modfile.Parse(goModPath, content, nil); mod != nil && mod.Module != nil {
			return mod.Module.Mod.Path
		}
	}
	return filepath.Base(filepath.Dir(goModPath))
}

var tomlName = regexp.MustCompile(`^name\s*=\s*["']([^"']+)["']`)

// extractPyProjectName returns name declared in [project] or [tool.poetry] table
func extractPyProjectName(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	inTable := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inTable = line == "[project]" || line == "[tool.poetry]"
			continue
		}
		if !inTable {
			continue
		}
		if matches := tomlName.FindStringSubmatch(line); len(matches) == 2 {
			return matches[1]
		}
	}
	return ""
}

var setupName = regexp.MustCompile(`(?m)^\s*name\s*=\s*["']?([A-Za-z0-9_.\-]+)`)

func extractSetupName(data []byte) string {
	if matches := setupName.FindSubmatch(data); len(matches) == 2 {
		return string(matches[1])
	}
	return ""
}

// determineProjectType identifies the type of project based on the marker file
func determineProjectType(marker string) string {
	switch marker {
	case "go.mod":
		return "go"
	case "pyproject.toml", "setup.py", "setup.cfg", "requirements.txt", "Pipfile":
		return "python"
	case ".git":
		return "git"
	default:
		return "unknown"
	}
}
