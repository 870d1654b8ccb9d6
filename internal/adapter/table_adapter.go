package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	m "github.com/mouse-blink/textmig/internal/model"
)

var (
	// ErrTableNotFound is returned when no reference table with the wanted name exists.
	ErrTableNotFound = errors.New("reference table not found")
	// ErrColumnNotFound is returned when a table has no column with the wanted name.
	ErrColumnNotFound = errors.New("column not found")
)

const tableExt = ".txt"

// tableHeaderRows is the title row plus the column-name row.
const tableHeaderRows = 2

// TableAdapter reads reference-data tables exported as delimited text.
type TableAdapter interface {
	// FindTable searches dir recursively for name.txt, trying the name as
	// given, lower-cased and upper-cased.
	FindTable(dir m.Path, name string) (m.Path, error)
	// FirstColumn returns the non-empty first-column cells of the data rows.
	FirstColumn(path m.Path) (map[string]struct{}, error)
	// ListTables returns every table file under dir, sorted.
	ListTables(dir m.Path) ([]m.Path, error)
	// Column returns the non-empty data cells of the column whose header
	// matches name, ignoring case.
	Column(path m.Path, name string) ([]m.TableCell, error)
}

// LocalTableAdapter reads tables from disk.
type LocalTableAdapter struct{}

// NewLocalTableAdapter constructs a LocalTableAdapter.
func NewLocalTableAdapter() *LocalTableAdapter {
	return &LocalTableAdapter{}
}

// FindTable implements TableAdapter.
func (a *LocalTableAdapter) FindTable(dir m.Path, name string) (m.Path, error) {
	candidates := []string{name + tableExt, strings.ToLower(name) + tableExt, strings.ToUpper(name) + tableExt}

	for _, candidate := range candidates {
		var found string

		err := filepath.WalkDir(string(dir), func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if !d.IsDir() && d.Name() == candidate {
				found = path

				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			return "", fmt.Errorf("search %s: %w", dir, err)
		}

		if found != "" {
			return m.Path(found), nil
		}
	}

	return "", fmt.Errorf("%w: %s under %s", ErrTableNotFound, name, dir)
}

// FirstColumn implements TableAdapter. Rows are tab separated unless the
// column-name row has no tab, in which case commas are used.
func (a *LocalTableAdapter) FirstColumn(path m.Path) (map[string]struct{}, error) {
	lines, sep, err := readTable(path)
	if err != nil {
		return nil, err
	}

	texts := make(map[string]struct{})
	if len(lines) <= tableHeaderRows {
		return texts, nil
	}

	for _, line := range lines[tableHeaderRows:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cell, _, _ := strings.Cut(line, sep)
		cell = unquoteCell(cell)

		if strings.TrimSpace(cell) != "" {
			texts[cell] = struct{}{}
		}
	}

	return texts, nil
}

// ListTables implements TableAdapter.
func (a *LocalTableAdapter) ListTables(dir m.Path) ([]m.Path, error) {
	var tables []m.Path

	err := filepath.WalkDir(string(dir), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), tableExt) {
			tables = append(tables, m.Path(path))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", dir, err)
	}

	slices.Sort(tables)

	return tables, nil
}

// Column implements TableAdapter, splitting rows the same way as FirstColumn.
func (a *LocalTableAdapter) Column(path m.Path, name string) ([]m.TableCell, error) {
	lines, sep, err := readTable(path)
	if err != nil {
		return nil, err
	}

	index := -1

	if len(lines) >= tableHeaderRows {
		for i, header := range strings.Split(lines[1], sep) {
			if strings.EqualFold(strings.TrimSpace(header), name) {
				index = i

				break
			}
		}
	}

	if index < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrColumnNotFound, name, path)
	}

	var cells []m.TableCell

	for i := tableHeaderRows; i < len(lines); i++ {
		fields := strings.Split(lines[i], sep)
		if strings.TrimSpace(lines[i]) == "" || index >= len(fields) {
			continue
		}

		if cell := unquoteCell(fields[index]); strings.TrimSpace(cell) != "" {
			cells = append(cells, m.TableCell{Text: cell, Line: i + 1})
		}
	}

	return cells, nil
}

// readTable returns the lines of a table and its cell separator.
func readTable(path m.Path) ([]string, string, error) {
	// #nosec G304 - path is a configured reference table
	f, err := os.Open(string(path))
	if err != nil {
		return nil, "", err
	}

	defer func() { _ = f.Close() }()

	var lines []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, "", fmt.Errorf("read table %s: %w", path, err)
	}

	sep := ","
	if len(lines) > 1 && strings.Contains(lines[1], "\t") {
		sep = "\t"
	}

	return lines, sep, nil
}

func unquoteCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if len(cell) >= 2 && strings.HasPrefix(cell, `"`) && strings.HasSuffix(cell, `"`) {
		cell = cell[1 : len(cell)-1]
	}

	return cell
}
