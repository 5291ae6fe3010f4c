package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/acceptance-map/internal/config"
	"github.com/sells-group/acceptance-map/internal/dataset"
	"github.com/sells-group/acceptance-map/internal/fetcher"
	"github.com/sells-group/acceptance-map/internal/model"
	"github.com/sells-group/acceptance-map/internal/view"
)

func loaderOptions(c *config.Config) dataset.Options {
	return dataset.Options{
		Path:   c.Data.Path,
		Format: fetcher.Format(c.Data.Format),
		Sheet:  c.Data.Sheet,
		Strict: c.Data.Strict,
	}
}

func newCache(c *config.Config) (*dataset.Cache, error) {
	policy, err := dataset.ParsePolicy(c.Data.CachePolicy)
	if err != nil {
		return nil, err
	}
	return dataset.NewCache(dataset.NewLoader(loaderOptions(c)), policy), nil
}

// loadTable reads the configured source once.
func loadTable(ctx context.Context, c *config.Config) (*model.Table, error) {
	if err := c.Validate("data"); err != nil {
		return nil, err
	}
	t, err := dataset.NewLoader(loaderOptions(c)).Load(ctx)
	if err != nil {
		if dataset.IsNotFound(err) {
			return nil, eris.Wrapf(err, "could not load the data file %q", c.Data.Path)
		}
		return nil, err
	}
	return t, nil
}

// resolveQuestion picks a label from t. arg may be empty (first label), a
// label, a 1-based index into the label list, or a raw question identifier.
func resolveQuestion(t *model.Table, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	labels := t.Labels()
	if len(labels) == 0 {
		return "", eris.New("no questions in data")
	}
	if arg == "" {
		return view.DefaultLabel(t, ""), nil
	}
	if t.HasLabel(arg) {
		return arg, nil
	}
	if n, err := strconv.Atoi(arg); err == nil {
		if n >= 1 && n <= len(labels) {
			return labels[n-1], nil
		}
		return "", eris.Errorf("question index %d out of range 1..%d", n, len(labels))
	}
	if label, ok := model.QuestionLabel(arg); ok && t.HasLabel(label) {
		return label, nil
	}
	for _, l := range labels {
		if strings.EqualFold(l, arg) {
			return l, nil
		}
	}
	return "", eris.Errorf("unknown question %q (run 'acceptance-map questions' to list them)", arg)
}
