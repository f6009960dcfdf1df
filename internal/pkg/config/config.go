package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP    HTTPConfig
	Data    DataConfig
	Norms   NormsConfig
	Log     LogConfig
	Session SessionConfig
	Watch   WatchConfig
	Export  ExportConfig
}

type HTTPConfig struct {
	Addr         string
	AllowOrigins []string
}

type DataConfig struct {
	Dir              string
	SeedDemo         bool
	FallbackEncoding string
}

type NormsConfig struct {
	// File is resolved against Data.Dir when relative.
	File string
}

type LogConfig struct {
	Level       string
	Development bool
}

type SessionConfig struct {
	Secret string
}

type WatchConfig struct {
	Enabled  bool
	Debounce time.Duration
}

type ExportConfig struct {
	Driver string // "", "fs" or "s3"
	Dir    string
	S3     S3Config
}

type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	PathStyle bool
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperHTTPAddr, ":8080")
	v.SetDefault(constants.ViperCORSAllowOrigins, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperDataDir, "./data")
	v.SetDefault(constants.ViperDataSeedDemo, true)
	v.SetDefault(constants.ViperDataFallbackEncoding, "latin1")
	v.SetDefault(constants.ViperNormsFile, "process_norms.json")
	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogDevelopment, false)
	v.SetDefault(constants.ViperSessionSecret, "")
	v.SetDefault(constants.ViperWatchEnabled, true)
	v.SetDefault(constants.ViperWatchDebounce, 500*time.Millisecond)
	v.SetDefault(constants.ViperExportDriver, "fs")
	v.SetDefault(constants.ViperExportDir, "./data/exports")
	v.SetDefault(constants.ViperExportS3Region, "us-east-1")
	v.SetDefault(constants.ViperExportS3PathStyle, false)
}

// Load reads the optional config file and MILKDIGIT_* environment.
// An empty path searches milkdigit.yaml in the working directory; a missing file keeps defaults.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("milkdigit")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("viper.ReadInConfig: %w", err)
		}
	}

	return FromViper(v), nil
}

func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:         v.GetString(constants.ViperHTTPAddr),
			AllowOrigins: v.GetStringSlice(constants.ViperCORSAllowOrigins),
		},
		Data: DataConfig{
			Dir:              v.GetString(constants.ViperDataDir),
			SeedDemo:         v.GetBool(constants.ViperDataSeedDemo),
			FallbackEncoding: v.GetString(constants.ViperDataFallbackEncoding),
		},
		Norms: NormsConfig{File: v.GetString(constants.ViperNormsFile)},
		Log: LogConfig{
			Level:       v.GetString(constants.ViperLogLevel),
			Development: v.GetBool(constants.ViperLogDevelopment),
		},
		Session: SessionConfig{Secret: v.GetString(constants.ViperSessionSecret)},
		Watch: WatchConfig{
			Enabled:  v.GetBool(constants.ViperWatchEnabled),
			Debounce: v.GetDuration(constants.ViperWatchDebounce),
		},
		Export: ExportConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString(constants.ViperExportDriver))),
			Dir:    v.GetString(constants.ViperExportDir),
			S3: S3Config{
				Bucket:    v.GetString(constants.ViperExportS3Bucket),
				Region:    v.GetString(constants.ViperExportS3Region),
				Endpoint:  v.GetString(constants.ViperExportS3Endpoint),
				PathStyle: v.GetBool(constants.ViperExportS3PathStyle),
			},
		},
	}

	return cfg
}

// NormsPath returns the norms file location.
func (c *Config) NormsPath() string {
	if c.Norms.File == "" || filepath.IsAbs(c.Norms.File) {
		return c.Norms.File
	}
	return filepath.Join(c.Data.Dir, c.Norms.File)
}
