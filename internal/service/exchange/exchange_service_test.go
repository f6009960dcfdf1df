package exchange

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	blobfs "github.com/ougirez/milkdigit/internal/pkg/blob/fs"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRouteUpload(t *testing.T) {
	tests := map[string]store.Resource{
		"Products.csv":                 store.ResourceProducts,
		"my_SAMPLES_2024.csv":          store.ResourceSamples,
		"measurements.csv":             store.ResourceMeasurements,
		"amino_acids.csv":              store.ResourceVitamins,
		"Vitamins_AminoAcids.csv":      store.ResourceVitamins,
		"Storage_Conditions.csv":       store.ResourceStorage,
		"/tmp/upload/product_list.csv": store.ResourceProducts,
	}
	for name, want := range tests {
		got, err := RouteUpload(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := RouteUpload("report.csv")
	assert.True(t, errors.Is(err, constants.ErrUnrecognizedUpload))
}

func newSeeded(t *testing.T) store.Store {
	t.Helper()
	st := store.NewStore(t.TempDir(), nil)
	_, err := st.Seed(context.Background(), time.Now())
	require.NoError(t, err)
	return st
}

func TestUpload(t *testing.T) {
	st := newSeeded(t)
	svc := NewExchangeService(st, nil)
	ctx := context.Background()

	before, err := os.ReadFile(st.Path(store.ResourceSamples))
	require.NoError(t, err)

	_, err = svc.Upload(ctx, "notes.csv", []byte("a\n1\n"))
	assert.True(t, errors.Is(err, constants.ErrUnrecognizedUpload))

	_, err = svc.Upload(ctx, "samples.csv", []byte("a,b\n1,2,3\n"))
	assert.Error(t, err)
	after, err := os.ReadFile(st.Path(store.ResourceSamples))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	resp, err := svc.Upload(ctx, "samples_march.csv", []byte("sample_id,product_id\n10,1\n11,2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Rows)
	assert.Equal(t, "Samples.csv", resp.File)

	snap, err := st.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Samples(), 2)
}

func TestWriteZIP(t *testing.T) {
	st := newSeeded(t)
	require.NoError(t, os.Remove(st.Path(store.ResourceVitamins)))
	svc := NewExchangeService(st, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteZIP(context.Background(), &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"Measurements.csv", "Products.csv", "Samples.csv", "Storage_Conditions.csv"}, names)
}

func TestWriteXLSX(t *testing.T) {
	svc := NewExchangeService(newSeeded(t), nil)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteXLSX(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"products", "samples", "measurements", "vitamins", "storage"}, f.GetSheetList())

	rows, err := f.GetRows("products")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "product_id", rows[0][0])
	assert.Equal(t, "Айран", rows[5][1])
}

func TestPublish(t *testing.T) {
	st := newSeeded(t)

	_, err := NewExchangeService(st, nil).Publish(context.Background())
	assert.True(t, errors.Is(err, constants.ErrExportSinkDisabled))

	root := t.TempDir()
	sink, err := blobfs.New(root)
	require.NoError(t, err)

	svc := NewExchangeService(st, sink)
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC) }

	info, err := svc.Publish(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "exports/20240510T083000Z_Milk_Digitalization_all_csv.zip", info.Key)
	assert.Positive(t, info.Size)
	assert.FileExists(t, filepath.Join(root, "exports", "20240510T083000Z_Milk_Digitalization_all_csv.zip"))

	list, err := svc.Published(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestStatus(t *testing.T) {
	st := newSeeded(t)
	require.NoError(t, os.Remove(st.Path(store.ResourceStorage)))
	st.Invalidate()

	status, err := NewExchangeService(st, nil).Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Storage_Conditions.csv"}, status.Missing)
	require.Len(t, status.Stores, 5)
	assert.Equal(t, 5, status.Stores[0].Rows)
	assert.Equal(t, "utf-8", status.Stores[0].Encoding)
}
