package domain

import (
	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// unifiedDiff renders the change from before to after in unified format.
func unifiedDiff(name, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	})
}
