package dataset

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/sells-group/acceptance-map/internal/model"
)

// Policy selects when a cached table is rebuilt.
type Policy string

const (
	// PolicyStatic builds the table once and keeps it for the process
	// lifetime. Only Invalidate forces a rebuild.
	PolicyStatic Policy = "static"
	// PolicyRevalidate stats the source on every Get and rebuilds the table
	// when its size or modification time changed.
	PolicyRevalidate Policy = "revalidate"
)

// ParsePolicy parses a policy name. Empty means PolicyStatic.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyStatic:
		return PolicyStatic, nil
	case PolicyRevalidate:
		return PolicyRevalidate, nil
	}
	return "", eris.Errorf("dataset: unknown cache policy %q", s)
}

type cacheEntry struct {
	table *model.Table
	fp    Fingerprint
}

// Cache holds the normalized table. Tables handed out are immutable, so
// callers may share them freely. Failed loads are never cached.
type Cache struct {
	loader *Loader
	policy Policy
	entry  atomic.Pointer[cacheEntry]
	group  singleflight.Group
	loads  atomic.Int64
	// epoch counts invalidations. A load that started in an older epoch
	// must not leave its table cached.
	epoch atomic.Uint64
}

// NewCache creates an empty cache over loader.
func NewCache(loader *Loader, policy Policy) *Cache {
	if policy == "" {
		policy = PolicyStatic
	}
	return &Cache{loader: loader, policy: policy}
}

// Policy returns the cache's reload policy.
func (c *Cache) Policy() Policy { return c.policy }

// Path returns the source path behind the cache.
func (c *Cache) Path() string { return c.loader.Path() }

// Get returns the cached table, loading it on first use. Repeated calls with
// an unchanged source return the same *model.Table.
func (c *Cache) Get(ctx context.Context) (*model.Table, error) {
	e := c.entry.Load()
	if e != nil {
		if c.policy == PolicyStatic {
			return e.table, nil
		}
		fp, err := Stat(c.loader.Path())
		if err != nil {
			if IsNotFound(err) {
				c.entry.CompareAndSwap(e, nil)
			}
			return nil, err
		}
		if fp.Equal(e.fp) {
			return e.table, nil
		}
		zap.L().Info("dataset: source changed, reloading", zap.String("source", c.loader.Path()))
	}
	return c.reload(ctx)
}

// Invalidate drops the cached table; the next Get reloads it.
func (c *Cache) Invalidate() {
	c.epoch.Add(1)
	c.group.Forget(loadKey)
	if c.entry.Swap(nil) != nil {
		zap.L().Info("dataset: cache invalidated", zap.String("source", c.loader.Path()))
	}
}

// Cached reports whether a table is currently held.
func (c *Cache) Cached() bool { return c.entry.Load() != nil }

// Loads returns how many times the source has been read successfully.
func (c *Cache) Loads() int64 { return c.loads.Load() }

const loadKey = "load"

// reload reads the source once for all concurrent callers. The load runs
// detached from the caller's cancellation since other callers may share it.
func (c *Cache) reload(ctx context.Context) (*model.Table, error) {
	ctx = context.WithoutCancel(ctx)
	v, err, _ := c.group.Do(loadKey, func() (any, error) {
		epoch := c.epoch.Load()
		t, fp, err := c.loader.load(ctx)
		if err != nil {
			return nil, err
		}
		e := &cacheEntry{table: t, fp: fp}
		c.entry.Store(e)
		c.loads.Add(1)
		if c.epoch.Load() != epoch {
			c.entry.CompareAndSwap(e, nil)
			zap.L().Info("dataset: invalidated during load, not caching", zap.String("source", c.loader.Path()))
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.Table), nil
}
