package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.True(t, cfg.Data.SeedDemo)
	assert.Equal(t, "latin1", cfg.Data.FallbackEncoding)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, filepath.Join("data", "process_norms.json"), cfg.NormsPath())
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milkdigit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":9090"
data:
  dir: /srv/milk
  seed_demo: false
norms:
  file: /etc/milkdigit/norms.yaml
export:
  driver: S3
  s3:
    bucket: exports
    path_style: true
`), 0o644))
	t.Setenv("MILKDIGIT_LOG_LEVEL", "debug")
	t.Setenv("MILKDIGIT_HTTP_ADDR", ":7070")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "/srv/milk", cfg.Data.Dir)
	assert.False(t, cfg.Data.SeedDemo)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/etc/milkdigit/norms.yaml", cfg.NormsPath())
	assert.Equal(t, "s3", cfg.Export.Driver)
	assert.Equal(t, "exports", cfg.Export.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.Export.S3.Region)
	assert.True(t, cfg.Export.S3.PathStyle)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "milkdigit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [\n"), 0o644))

	_, err := Load(viper.New(), path)
	assert.Error(t, err)
}
