package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ougirez/milkdigit/internal/pkg/blob"
	blobfs "github.com/ougirez/milkdigit/internal/pkg/blob/fs"
	blobs3 "github.com/ougirez/milkdigit/internal/pkg/blob/s3"
	"github.com/ougirez/milkdigit/internal/pkg/config"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/metrics"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/pkg/tabular"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "milkdigit",
		Short: "Milk Digitalization - dairy quality records",
		Long: `milkdigit keeps the quality records of a small dairy in delimited files:
products, batches, measurements, vitamins and storage conditions.

Run without arguments to start the web server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			if err = logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: a.runServe,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./milkdigit.yaml)")
	flags.String("data-dir", "", "directory with the delimited stores")
	flags.String("log-level", "", "debug, info, warn or error")
	_ = a.v.BindPFlag(constants.ViperDataDir, flags.Lookup("data-dir"))
	_ = a.v.BindPFlag(constants.ViperLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.serveCmd(),
		a.stepsCmd(),
		a.parseCmd(),
		a.exportCmd(),
		a.seedCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) newStore(m *metrics.Metrics) store.Store {
	loader := tabular.NewLoader(a.cfg.Data.FallbackEncoding)
	if m == nil {
		return store.NewStore(a.cfg.Data.Dir, loader)
	}
	return store.NewStore(a.cfg.Data.Dir, loader, store.WithObserver(m))
}

// newRegistry loads the norms file. A broken file is reported and the defaults stay in effect.
func (a *app) newRegistry(ctx context.Context) *norms.Registry {
	registry := norms.NewRegistry(a.cfg.NormsPath())
	if err := registry.Reload(); err != nil {
		logger.Warnf(ctx, "%v, using default norms", err)
	}
	return registry
}

// newSink returns the configured export sink, nil when publishing is off.
func (a *app) newSink(ctx context.Context) (blob.Store, error) {
	switch a.cfg.Export.Driver {
	case "", "none":
		return nil, nil
	case string(blob.DriverFilesystem):
		return blobfs.New(a.cfg.Export.Dir)
	case string(blob.DriverS3):
		return blobs3.New(ctx, blobs3.Config{
			Bucket:    a.cfg.Export.S3.Bucket,
			Region:    a.cfg.Export.S3.Region,
			Endpoint:  a.cfg.Export.S3.Endpoint,
			PathStyle: a.cfg.Export.S3.PathStyle,
		})
	}
	return nil, fmt.Errorf("unknown export driver %q", a.cfg.Export.Driver)
}
