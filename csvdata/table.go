// Package csvdata reads flat CSV files into typed, column-ordered tables.
package csvdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindReal
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	default:
		return "text"
	}
}

type Column struct {
	Name string
	Kind Kind
}

// Table is a fully loaded CSV file. Every cell is nil, int64, float64, bool
// or string, matching the kind of its column.
type Table struct {
	Columns []Column
	Rows    [][]any
}

var ErrEmpty = errors.New("csv has no header")

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the column names in file order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// Read loads the whole stream. Rows shorter than the header are padded with
// missing values; longer rows are an error.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	names := dedupe(header)

	var raw [][]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) > len(names) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(rec), len(names))
		}
		for len(rec) < len(names) {
			rec = append(rec, "")
		}
		raw = append(raw, rec)
	}

	t := &Table{
		Columns: make([]Column, len(names)),
		Rows:    make([][]any, len(raw)),
	}
	for i := range t.Rows {
		t.Rows[i] = make([]any, len(names))
	}
	for c, name := range names {
		kind := inferKind(raw, c)
		t.Columns[c] = Column{Name: name, Kind: kind}
		for r := range raw {
			t.Rows[r][c] = convert(raw[r][c], kind)
		}
	}
	return t, nil
}

// dedupe renames repeated header names to name.1, name.2, ...
func dedupe(header []string) []string {
	used := make(map[string]bool, len(header))
	out := make([]string, len(header))
	for i, h := range header {
		name := h
		for n := 1; used[name]; n++ {
			name = h + "." + strconv.Itoa(n)
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// Format renders a cell the way it would be written back to a CSV file.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
