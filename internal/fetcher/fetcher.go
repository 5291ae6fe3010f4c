// Package fetcher reads the flat acceptance table from CSV and XLSX files.
package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Format identifies the on-disk encoding of the source table.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Column names every source must provide.
const (
	ColumnQuestion   = "question"
	ColumnCode       = "code"
	ColumnAcceptance = "acceptance"
)

var requiredColumns = []string{ColumnQuestion, ColumnCode, ColumnAcceptance}

// Row is one raw source row. Values are untrimmed strings; parsing and
// normalization are left to the caller.
type Row struct {
	Question   string `csv:"question"`
	Code       string `csv:"code"`
	Acceptance string `csv:"acceptance"`
	Line       int    `csv:"-"`
}

// Options configures ReadFile.
type Options struct {
	Format Format // empty = detect from extension
	Sheet  string // XLSX only; empty = first sheet
}

// DetectFormat returns override when set, otherwise the format implied by the
// file extension.
func DetectFormat(path string, override Format) (Format, error) {
	if override != "" {
		switch Format(strings.ToLower(string(override))) {
		case FormatCSV:
			return FormatCSV, nil
		case FormatXLSX:
			return FormatXLSX, nil
		}
		return "", eris.Errorf("fetcher: unsupported format %q", override)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", eris.Errorf("fetcher: cannot infer format of %q", path)
}

// ReadFile reads all rows of the source table at path.
func ReadFile(ctx context.Context, path string, opts Options) ([]Row, error) {
	format, err := DetectFormat(path, opts.Format)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatXLSX:
		return ReadXLSX(ctx, path, opts.Sheet)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrap(err, "fetcher: open csv")
		}
		defer func() { _ = f.Close() }()
		return ReadCSV(ctx, f)
	}
}

// normalizeHeader lower-cases and trims header cells, dropping a UTF-8 BOM.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}

func checkColumns(header []string) error {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[h] = true
	}
	var missing []string
	for _, c := range requiredColumns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return eris.Errorf("fetcher: missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
