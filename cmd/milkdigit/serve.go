package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/ougirez/milkdigit/internal/api"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"github.com/ougirez/milkdigit/internal/pkg/logger"
	"github.com/ougirez/milkdigit/internal/pkg/metrics"
	"github.com/ougirez/milkdigit/internal/pkg/norms"
	"github.com/ougirez/milkdigit/internal/pkg/store"
	"github.com/ougirez/milkdigit/internal/pkg/watcher"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
	cmd.Flags().String("addr", "", "listen address (default :8080)")
	_ = a.v.BindPFlag(constants.ViperHTTPAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	st := a.newStore(m)

	if a.cfg.Data.SeedDemo {
		if _, err := st.Seed(ctx, time.Now()); err != nil {
			return err
		}
	}

	registry := a.newRegistry(ctx)

	sink, err := a.newSink(ctx)
	if err != nil {
		return err
	}

	if a.cfg.Watch.Enabled {
		w, err := a.watch(ctx, st, registry, m)
		if err != nil {
			return err
		}
		defer w.Stop()
	}

	svc, err := api.NewAPIService(a.cfg, api.Deps{
		Store:   st,
		Norms:   registry,
		Sink:    sink,
		Metrics: m,
	})
	if err != nil {
		return err
	}

	go svc.Serve(a.cfg.HTTP.Addr)
	logger.Info(ctx, "server started", "addr", a.cfg.HTTP.Addr, "data_dir", st.Dir())

	<-ctx.Done()
	logger.Infof(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return svc.Shutdown(shutdownCtx)
}

// watch drops the store snapshot on any store file change and re-reads the norms file on its change.
func (a *app) watch(ctx context.Context, st store.Store, registry *norms.Registry, m *metrics.Metrics) (*watcher.Watcher, error) {
	w, err := watcher.New(a.cfg.Watch.Debounce)
	if err != nil {
		return nil, err
	}

	for _, r := range store.Resources {
		w.Handle(st.Path(r), func(ctx context.Context, path string) {
			st.Invalidate()
			m.ObserveReload("stores")
			logger.Info(ctx, "store changed on disk", "path", path)
		})
	}

	if path := registry.Path(); path != "" {
		w.Handle(path, func(ctx context.Context, path string) {
			m.ObserveReload("norms")
			if err := registry.Reload(); err != nil {
				logger.Warnf(ctx, "%v, using default norms", err)
				return
			}
			logger.Info(ctx, "norms reloaded", "path", path)
		})
	}

	if err = w.Start(ctx); err != nil {
		w.Stop()
		return nil, err
	}
	return w, nil
}
