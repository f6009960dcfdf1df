package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	mu    sync.Mutex
	loads map[string]int
}

func (o *countingObserver) ObserveLoad(resource string, _ int, _ time.Duration, _ error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loads[resource]++
}

func newSeededStore(t *testing.T) (Store, *countingObserver) {
	t.Helper()
	obs := &countingObserver{loads: make(map[string]int)}
	s := NewStore(t.TempDir(), tabular.NewLoader("latin1"), WithObserver(obs))

	seeded, err := s.Seed(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, seeded, len(Resources))
	return s, obs
}

func TestSeedAndSnapshot(t *testing.T) {
	s, obs := newSeededStore(t)
	ctx := context.Background()

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Errors)

	assert.Len(t, snap.Products(), 5)
	samples := snap.Samples()
	require.Len(t, samples, 1)
	assert.Equal(t, int64(5), *samples[0].ProductID)
	assert.Equal(t, "2024-03-01", samples[0].DateReceived.Format("2006-01-02"))

	ms := snap.Measurements()
	require.Len(t, ms, 2)
	assert.Equal(t, 4.3, *ms[1].ActualNumeric)

	vit := snap.Vitamins()
	require.Len(t, vit, 1)
	assert.Equal(t, 0.9, *vit[0].ValueNumeric)

	// второй вызов из кеша
	again, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Same(t, snap, again)
	assert.Equal(t, 1, obs.loads[string(ResourceSamples)])

	// повторный сид ничего не пишет
	seeded, err := s.Seed(ctx, time.Now())
	require.NoError(t, err)
	assert.Empty(t, seeded)
}

func TestAppendSampleRoundTrip(t *testing.T) {
	s, _ := newSeededStore(t)
	ctx := context.Background()

	before, err := s.Snapshot(ctx)
	require.NoError(t, err)

	row := map[string]string{
		"sample_id":     "2",
		"product_id":    "1",
		"reg_number":    "A-002",
		"date_received": "2024-03-02",
		"storage_days":  "3",
		"conditions":    "21.5°C, 64%",
		"notes":         "пастеризация, партия \"утро\"",
	}
	require.NoError(t, s.AppendSample(ctx, row))

	after, err := s.Snapshot(ctx)
	require.NoError(t, err)
	require.NotSame(t, before, after)

	tbl := after.Table(ResourceSamples)
	require.Equal(t, before.Table(ResourceSamples).Len()+1, tbl.Len())
	if diff := cmp.Diff(row, tbl.Record(tbl.Len()-1)); diff != "" {
		t.Errorf("appended row mismatch (-want +got):\n%s", diff)
	}
}

func TestAppendCreatesHeader(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, s.AppendMeasurements(ctx, []map[string]string{
		{"id": "10", "sample_id": "1", "parameter": "pH", "actual_value": "4,4"},
	}))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, ResourceMeasurements.Columns(), snap.Table(ResourceMeasurements).Columns)
	assert.Equal(t, 4.4, *snap.Measurements()[0].ActualNumeric)
	assert.True(t, snap.Table(ResourceProducts).Missing)
}

func TestSnapshotAliasesAndIdentifiers(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Samples.csv"),
		[]byte("ID,Product,Date\n1.0,5,01.03.2024\nx,abc,\n"), 0o644))

	s := NewStore(dir, nil)
	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	tbl := snap.Table(ResourceSamples)
	assert.Equal(t, []string{"sample_id", "product_id", "date_received"}, tbl.Columns)
	assert.Equal(t, []string{"1", ""}, tbl.Column("sample_id"))

	samples := snap.Samples()
	assert.Nil(t, samples[1].ID)
	assert.Nil(t, samples[1].ProductID)
	assert.NotNil(t, samples[0].DateReceived)
}

func TestSnapshotIsolatesBrokenStore(t *testing.T) {
	s, _ := newSeededStore(t)
	require.NoError(t, os.WriteFile(s.Path(ResourceVitamins), []byte("name,unit\n\"VitC,мг\n"), 0o644))
	s.Invalidate()

	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	var ingestion *tabular.IngestionError
	assert.True(t, errors.As(snap.Err(ResourceVitamins), &ingestion))
	assert.Equal(t, 0, snap.Table(ResourceVitamins).Len())
	assert.Len(t, snap.Products(), 5)
}

func TestAppendRefusesUnreadableStore(t *testing.T) {
	s, _ := newSeededStore(t)
	broken := []byte("sample_id,product_id\n7,5\n\"8,5\n")
	require.NoError(t, os.WriteFile(s.Path(ResourceSamples), broken, 0o644))
	s.Invalidate()

	err := s.AppendSample(context.Background(), map[string]string{"sample_id": "1", "product_id": "5"})
	var ingestion *tabular.IngestionError
	require.True(t, errors.As(err, &ingestion))

	got, err := os.ReadFile(s.Path(ResourceSamples))
	require.NoError(t, err)
	assert.Equal(t, broken, got)
}

func TestReplace(t *testing.T) {
	s, _ := newSeededStore(t)
	ctx := context.Background()

	tbl, err := s.Replace(ctx, ResourceProducts, []byte("id,title\n7,Кумыс\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	products := snap.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Кумыс", products[0].Name)

	_, err = s.Replace(ctx, ResourceProducts, []byte("a,b\n1,2,3\n"))
	require.Error(t, err)
	snap, err = s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Products(), 1)
}

func TestSnapshotCancelled(t *testing.T) {
	s := NewStore(t.TempDir(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
