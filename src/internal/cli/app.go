// Package cli wires configuration, storage and services behind the
// ledger's commands.
package cli

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/api-sage/retail-ledger/src/internal/adapter/http/controller"
	"github.com/api-sage/retail-ledger/src/internal/adapter/http/middleware"
	"github.com/api-sage/retail-ledger/src/internal/adapter/http/router"
	"github.com/api-sage/retail-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/retail-ledger/src/internal/config"
	"github.com/api-sage/retail-ledger/src/internal/logger"
	"github.com/api-sage/retail-ledger/src/internal/metrics"
	"github.com/api-sage/retail-ledger/src/internal/usecase/services"
)

type app struct {
	cfg      config.Config
	registry *prometheus.Registry
	clients  *services.ClientService
	accounts *services.AccountService
}

func newApp(cfg config.Config) *app {
	logger.Configure(os.Stdout, cfg.LogLevel)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	clientRepo := memory.NewClientRepository()
	accountRepo := memory.NewAccountRepository()

	return &app{
		cfg:      cfg,
		registry: registry,
		clients:  services.NewClientService(clientRepo, m),
		accounts: services.NewAccountService(accountRepo, clientRepo, m, cfg.OverdraftLimit, cfg.MaxWithdrawals),
	}
}

func (a *app) handler() http.Handler {
	var metricsHandler http.Handler
	if a.cfg.MetricsEnabled {
		metricsHandler = promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
	}

	return router.New(
		controller.NewClientController(a.clients),
		controller.NewAccountController(a.accounts),
		metricsHandler,
		middleware.Chain(middleware.RequestID, middleware.Recover, middleware.AccessLog),
	)
}
