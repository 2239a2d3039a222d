package api

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/eventbook/server/internal/api/handlers"
	"github.com/eventbook/server/internal/api/middleware"
	"github.com/eventbook/server/internal/config"
	"github.com/eventbook/server/internal/domain/events"
	"github.com/eventbook/server/internal/domain/users"
	"github.com/eventbook/server/internal/graph"
	"github.com/eventbook/server/internal/metrics"
	"github.com/eventbook/server/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires the service graph onto the HTTP surface. The store
// handle is constructed once at startup and passed in; nothing here
// reaches for ambient connections.
func NewRouter(cfg config.Config, logger zerolog.Logger, repo storage.Repository) (http.Handler, error) {
	eventsService := events.NewService(repo.Events())
	usersService := users.NewService(repo.Users())

	resolver := graph.NewResolver(eventsService, usersService)
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}

	gqlHandler := handlers.NewGraphQLHandler(schema, cfg.Environment)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz(repo))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/graphql", methodMux(map[string]http.Handler{
		http.MethodGet:  http.HandlerFunc(gqlHandler.GraphiQL),
		http.MethodPost: http.HandlerFunc(gqlHandler.Execute),
	}))

	var handler http.Handler = mux
	handler = middleware.Metrics()(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler, nil
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
