// Package model defines the data structures shared by the rewrite and extract workflows.
package model

// Path represents a file system path.
type Path string

// Source is a script file selected for processing.
type Source struct {
	// Path is the absolute location of the file.
	Path Path
	// Rel is Path relative to the scanned root, used for display.
	Rel Path
}

// Display returns the relative path when known, the absolute one otherwise.
func (s Source) Display() string {
	if s.Rel != "" {
		return string(s.Rel)
	}

	return string(s.Path)
}
