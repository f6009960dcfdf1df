package norms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDefaultsWithoutFile(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "process_norms.json"))
	require.NoError(t, r.Reload())

	_, ok := r.Override(Pasteurization)
	assert.False(t, ok)

	n, ok := r.Resolve(Pasteurization)
	require.True(t, ok)
	assert.Equal(t, 72.0, *n.Min)
	assert.Equal(t, 75.0, *n.Max)
	assert.Len(t, r.All(), 3)
}

func TestRegistryJSONOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "process_norms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Пастеризация": {"min": 76, "max": 78, "unit": "°C", "note": "HTST"}, "Сквашивание": {"min": 30}}`), 0o644))

	r := NewRegistry(path)
	require.NoError(t, r.Reload())

	n, ok := r.Override(Pasteurization)
	require.True(t, ok)
	assert.Equal(t, 76.0, *n.Min)
	assert.Equal(t, "HTST", n.Note)

	// ключи, которых нет в файле, берутся из встроенных
	n, ok = r.Resolve(Cooling)
	require.True(t, ok)
	assert.Equal(t, 2.0, *n.Min)

	all := r.All()
	assert.Len(t, all, 4)
}

func TestRegistryYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "norms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Охлаждение:\n  min: 1\n  max: 4\n  unit: °C\n"), 0o644))

	r := NewRegistry(path)
	require.NoError(t, r.Reload())

	n, ok := r.Override(Cooling)
	require.True(t, ok)
	assert.Equal(t, 4.0, *n.Max)
}

func TestRegistryMalformedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "process_norms.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Пастеризация": {"min": 76,`), 0o644))

	r := NewRegistry(path)
	assert.Error(t, r.Reload())

	n, ok := r.Resolve(Pasteurization)
	require.True(t, ok)
	assert.Equal(t, 72.0, *n.Min)
}
