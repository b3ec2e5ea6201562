package router

import "net/http"

type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler)
}

// New builds the API mux. A nil metricsHandler leaves /metrics unmounted.
func New(
	clientController RouteRegistrar,
	accountController RouteRegistrar,
	metricsHandler http.Handler,
	middleware func(http.Handler) http.Handler,
) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if clientController != nil {
		clientController.RegisterRoutes(mux, middleware)
	}
	if accountController != nil {
		accountController.RegisterRoutes(mux, middleware)
	}
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return mux
}
