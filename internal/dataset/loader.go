// Package dataset loads the survey table from disk, normalizes it, and keeps
// the normalized table in an explicit cache.
package dataset

import (
	"context"
	"errors"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/acceptance-map/internal/country"
	"github.com/sells-group/acceptance-map/internal/fetcher"
	"github.com/sells-group/acceptance-map/internal/model"
)

// DefaultPath is the source location used when none is configured.
const DefaultPath = "EU_Acceptance_QB15_Combined_from_XLSX.csv"

// Options configures a Loader.
type Options struct {
	Path   string
	Format fetcher.Format
	Sheet  string
	// Strict rejects rows with an unknown question identifier or an
	// acceptance outside [0, 100] instead of keeping them with an issue.
	Strict bool
}

// Fingerprint identifies one version of the source file.
type Fingerprint struct {
	Size    int64
	ModTime time.Time
}

// Equal reports whether two fingerprints describe the same file version.
func (f Fingerprint) Equal(o Fingerprint) bool {
	return f.Size == o.Size && f.ModTime.Equal(o.ModTime)
}

// Stat returns the fingerprint of path, or ErrNotFound when it does not exist.
func Stat(path string) (Fingerprint, error) {
	fi, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Fingerprint{}, eris.Wrapf(ErrNotFound, "%s", path)
	}
	if err != nil {
		return Fingerprint{}, eris.Wrap(err, "dataset: stat source")
	}
	if fi.IsDir() {
		return Fingerprint{}, eris.Errorf("dataset: source %s is a directory", path)
	}
	return Fingerprint{Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// Loader reads and normalizes the source table.
type Loader struct {
	opts  Options
	names func(string) model.Resolution
	geo   func(string) model.Resolution
	now   func() time.Time
}

// NewLoader creates a Loader. An empty path falls back to DefaultPath.
func NewLoader(opts Options) *Loader {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	return &Loader{
		opts:  opts,
		names: country.Name,
		geo:   country.GeoCode,
		now:   time.Now,
	}
}

// Path returns the source path the loader reads.
func (l *Loader) Path() string { return l.opts.Path }

// Load reads the source and returns a freshly normalized table. A missing
// source yields ErrNotFound.
func (l *Loader) Load(ctx context.Context) (*model.Table, error) {
	t, _, err := l.load(ctx)
	return t, err
}

func (l *Loader) load(ctx context.Context) (*model.Table, Fingerprint, error) {
	fp, err := Stat(l.opts.Path)
	if err != nil {
		return nil, Fingerprint{}, err
	}

	rows, err := fetcher.ReadFile(ctx, l.opts.Path, fetcher.Options{Format: l.opts.Format, Sheet: l.opts.Sheet})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Fingerprint{}, eris.Wrapf(ErrNotFound, "%s", l.opts.Path)
		}
		return nil, Fingerprint{}, eris.Wrap(err, "dataset: read source")
	}

	records, issues, err := l.normalize(rows)
	if err != nil {
		return nil, Fingerprint{}, err
	}

	t := model.NewTable(records, model.TableMeta{
		Generation: uuid.NewString(),
		Source:     l.opts.Path,
		LoadedAt:   l.now(),
		Issues:     issues,
	})

	zap.L().Info("dataset: loaded",
		zap.String("source", l.opts.Path),
		zap.Int("rows", t.Len()),
		zap.Int("issues", len(issues)),
		zap.String("generation", t.Meta().Generation),
	)

	return t, fp, nil
}

// normalize maps each raw row to a record. Row count is preserved.
func (l *Loader) normalize(rows []fetcher.Row) ([]model.Record, []model.Issue, error) {
	records := make([]model.Record, 0, len(rows))
	var issues []model.Issue

	for _, row := range rows {
		qid := strings.TrimSpace(row.Question)
		code := strings.TrimSpace(row.Code)
		raw := strings.TrimSpace(row.Acceptance)

		acceptance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, eris.Wrapf(err, "dataset: line %d: parse acceptance %q", row.Line, raw)
		}

		var rowIssues []model.Issue
		label, ok := model.QuestionLabel(qid)
		if !ok {
			label = qid
			rowIssues = append(rowIssues, model.Issue{Line: row.Line, Field: fetcher.ColumnQuestion, Value: qid, Reason: "unknown question identifier"})
		}
		if math.IsNaN(acceptance) || acceptance < 0 || acceptance > 100 {
			rowIssues = append(rowIssues, model.Issue{Line: row.Line, Field: fetcher.ColumnAcceptance, Value: raw, Reason: "outside [0, 100]"})
		}

		for _, is := range rowIssues {
			if l.opts.Strict {
				return nil, nil, eris.Wrapf(ErrInvalidRow, "%s", is)
			}
			zap.L().Warn("dataset: row issue",
				zap.Int("line", is.Line),
				zap.String("field", is.Field),
				zap.String("value", is.Value),
				zap.String("reason", is.Reason),
			)
		}
		issues = append(issues, rowIssues...)

		records = append(records, model.Record{
			QuestionID:    qid,
			QuestionLabel: label,
			CountryCode:   code,
			CountryName:   l.names(code),
			GeoCode:       l.geo(code),
			Acceptance:    acceptance,
		})
	}

	return records, issues, nil
}
