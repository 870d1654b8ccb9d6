// Package adapter contains the filesystem and persistence adapters used by the
// textmig workflows.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	m "github.com/mouse-blink/textmig/internal/model"
	ignore "github.com/sabhiram/go-gitignore"
)

// ErrInvalidRoot is returned when the scan root is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid root")

// IgnoredDirs are directories never descended into. They hold engine caches,
// build output or VCS metadata rather than hand-written scripts.
var IgnoredDirs = map[string]bool{
	".git":         true,
	".svn":         true,
	".vs":          true,
	".idea":        true,
	".vscode":      true,
	"Library":      true,
	"Temp":         true,
	"Logs":         true,
	"obj":          true,
	"bin":          true,
	"Build":        true,
	"Builds":       true,
	"node_modules": true,
}

// SourceQuery selects the script files of a batch run.
type SourceQuery struct {
	Root m.Path
	// Extension is matched case-insensitively, with or without the dot.
	Extension string
	// ExcludeFile is a base name always skipped, compared case-insensitively.
	ExcludeFile string
	// Exclude drops files whose root-relative slash path matches any pattern.
	Exclude          []*regexp.Regexp
	RespectGitignore bool
}

// SourceFSAdapter abstracts filesystem access so workflow logic can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// Get lists the files matching q in lexical path order.
	Get(q SourceQuery) ([]m.Source, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions, creating
	// the parent directory when needed.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks q.Root and returns every matching file.
func (a *LocalSourceFSAdapter) Get(q SourceQuery) ([]m.Source, error) {
	root, err := normalizeRootPath(string(q.Root))
	if err != nil {
		return nil, err
	}

	info, err := a.FileInfo(m.Path(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	var gitignore *ignore.GitIgnore
	if q.RespectGitignore {
		gitignore = loadGitignore(root)
	}

	ext := normalizeExtension(q.Extension)

	var sources []m.Source

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		relSlash := filepath.ToSlash(rel)

		if info.IsDir() {
			if path != root && (IgnoredDirs[info.Name()] || (gitignore != nil && gitignore.MatchesPath(relSlash))) {
				return filepath.SkipDir
			}

			return nil
		}

		if !matchesQuery(q, ext, info.Name(), relSlash) {
			return nil
		}

		if gitignore != nil && gitignore.MatchesPath(relSlash) {
			return nil
		}

		sources = append(sources, m.Source{Path: m.Path(path), Rel: m.Path(relSlash)})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Rel < sources[j].Rel
	})

	return sources, nil
}

func matchesQuery(q SourceQuery, ext, name, rel string) bool {
	if ext != "" && !strings.EqualFold(filepath.Ext(name), ext) {
		return false
	}

	if q.ExcludeFile != "" && strings.EqualFold(name, q.ExcludeFile) {
		return false
	}

	for _, re := range q.Exclude {
		if re.MatchString(rel) {
			return false
		}
	}

	return true
}

func normalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}

	return "." + ext
}

// loadGitignore compiles root/.gitignore, or returns nil when there is none.
func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")

	if _, err := os.Stat(path); err != nil {
		return nil
	}

	gitignore, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}

	return gitignore
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func normalizeRootPath(root string) (string, error) {
	rootStr := strings.TrimSpace(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}
