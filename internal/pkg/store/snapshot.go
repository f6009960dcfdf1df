package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"golang.org/x/sync/errgroup"
)

// Snapshot is a read-only view of all stores as of one load. A failed store is empty and has its error set.
type Snapshot struct {
	Tables   map[Resource]*tabular.Table
	Errors   map[Resource]error
	LoadedAt time.Time
}

func (s *Snapshot) Table(r Resource) *tabular.Table {
	if t, ok := s.Tables[r]; ok && t != nil {
		return t
	}
	return tabular.Empty(r.FileName())
}

// Err is the load error of r, nil when the store was read or is missing.
func (s *Snapshot) Err(r Resource) error {
	return s.Errors[r]
}

// Snapshot returns the cached snapshot or loads every store concurrently.
func (s *store) Snapshot(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	snap := &Snapshot{
		Tables: make(map[Resource]*tabular.Table, len(Resources)),
		Errors: make(map[Resource]error),
	}
	var snapMx sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)
	for _, r := range Resources {
		r := r
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			t, err := s.load(egCtx, r)

			snapMx.Lock()
			defer snapMx.Unlock()
			if err != nil {
				snap.Errors[r] = err
				t = tabular.Empty(r.FileName())
			}
			snap.Tables[r] = t
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap.LoadedAt = time.Now()
	s.cached = snap
	return snap, nil
}

func (s *store) load(ctx context.Context, r Resource) (*tabular.Table, error) {
	start := time.Now()
	path := s.Path(r)

	t, err := s.loader.Load(path)
	if s.observer != nil {
		s.observer.ObserveLoad(string(r), t.Len(), time.Since(start), err)
	}

	if err != nil {
		var ingestion *tabular.IngestionError
		if errors.As(err, &ingestion) {
			logger.Error(ctx, "store is unreadable", "store", r.FileName(), "error", ingestion.Err)
		}
		return nil, err
	}

	switch {
	case t.Missing:
		logger.Warnf(ctx, "store %s not found, using empty table", r.FileName())
	case t.Encoding != "" && t.Encoding != tabular.EncodingUTF8:
		logger.Debugf(ctx, "store %s decoded as %s", r.FileName(), t.Encoding)
	}

	return r.Normalize(t), nil
}
