package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ougirez/milkdigit/internal/pkg/tabular"
)

// Store is the file-backed persistence of the five delimited stores.
type Store interface {
	Dir() string
	Path(r Resource) string
	Snapshot(ctx context.Context) (*Snapshot, error)
	Invalidate()
	AppendSample(ctx context.Context, row map[string]string) error
	AppendMeasurements(ctx context.Context, rows []map[string]string) error
	Replace(ctx context.Context, r Resource, data []byte) (*tabular.Table, error)
	Seed(ctx context.Context, now time.Time) ([]Resource, error)
}

// LoadObserver receives one call per store load.
type LoadObserver interface {
	ObserveLoad(resource string, rows int, took time.Duration, err error)
}

type Option func(*store)

func WithObserver(o LoadObserver) Option {
	return func(s *store) {
		s.observer = o
	}
}

type store struct {
	dir      string
	loader   *tabular.Loader
	observer LoadObserver

	mu     sync.Mutex
	cached *Snapshot

	writeMu sync.Mutex
}

func NewStore(dir string, loader *tabular.Loader, opts ...Option) Store {
	if loader == nil {
		loader = tabular.NewLoader("")
	}
	s := &store{dir: dir, loader: loader}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *store) Dir() string {
	return s.dir
}

func (s *store) Path(r Resource) string {
	return filepath.Join(s.dir, r.FileName())
}

func (s *store) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

func (s *store) AppendSample(ctx context.Context, row map[string]string) error {
	return s.append(ctx, ResourceSamples, []map[string]string{row})
}

func (s *store) AppendMeasurements(ctx context.Context, rows []map[string]string) error {
	return s.append(ctx, ResourceMeasurements, rows)
}

func (s *store) append(ctx context.Context, r Resource, rows []map[string]string) error {
	if len(rows) == 0 {
		return nil
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err = snap.Err(r); err != nil {
		return fmt.Errorf("append to unreadable store: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	defer s.Invalidate()

	open := func(path string) (*os.File, error) {
		var f *os.File
		err := retry(ctx, func() error {
			var openErr error
			f, openErr = tabular.OpenAppend(path)
			return openErr
		})
		return f, err
	}
	return wrapErr(r, tabular.AppendRows(s.Path(r), r.Columns(), rows, open))
}

// Replace swaps a store file for uploaded content once the content parses.
func (s *store) Replace(ctx context.Context, r Resource, data []byte) (*tabular.Table, error) {
	t, err := s.loader.Parse(r.FileName(), data)
	if err != nil {
		return nil, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	defer s.Invalidate()

	err = retry(ctx, func() error {
		return tabular.WriteFileAtomic(s.Path(r), data)
	})
	if err != nil {
		return nil, wrapErr(r, err)
	}

	return r.Normalize(t), nil
}
