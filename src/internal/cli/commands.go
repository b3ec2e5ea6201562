package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/api-sage/retail-ledger/src/internal/config"
	"github.com/api-sage/retail-ledger/src/internal/console"
	"github.com/api-sage/retail-ledger/src/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(config.Load).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func NewRootCommand(load func() (config.Config, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger",
		Short:         "In-memory retail banking ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(load), newConsoleCommand(load))
	return root
}

func newServeCommand(load func() (config.Config, error)) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}

			listener, err := net.Listen("tcp", cfg.HTTPAddr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
			}

			return serve(cmd.Context(), newApp(cfg), listener)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides HTTP_ADDR")
	return cmd
}

// serve runs the server on listener until ctx is cancelled, then drains it
// within the configured shutdown timeout.
func serve(ctx context.Context, a *app, listener net.Listener) error {
	srv := &http.Server{
		Handler:           a.handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("ledger server starting", logger.Fields{
			"addr":           listener.Addr().String(),
			"metricsEnabled": a.cfg.MetricsEnabled,
		})
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("ledger server shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("ledger server shutdown failed", err, nil)
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}

	logger.Info("ledger server stopped", nil)
	return nil
}

func newConsoleCommand(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Run the interactive ledger menu",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			a := newApp(cfg)
			// keep log lines off the menu
			logger.Configure(cmd.ErrOrStderr(), cfg.LogLevel)

			err = console.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.clients, a.accounts).Run(cmd.Context())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}
