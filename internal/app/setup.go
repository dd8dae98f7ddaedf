// Package app contains the application setup for the CatalogService.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/internal/service"
	"github.com/abgdnv/gocatalog/internal/store"
	"github.com/abgdnv/gocatalog/internal/transport/rest"
	"github.com/abgdnv/gocatalog/pkg/messaging"
	natsclient "github.com/abgdnv/gocatalog/pkg/nats"
	"github.com/abgdnv/gocatalog/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Dependencies struct {
	ProductService     service.ProductService
	StoreService       service.StoreService
	AssociationService service.AssociationService
	Logger             *slog.Logger

	// MetricsHandler is served on MetricsPath when set.
	MetricsHandler http.Handler
	MetricsPath    string
}

// SetupDependencies wires the PostgreSQL repositories into the catalog services.
func SetupDependencies(dbPool *pgxpool.Pool, publisher messaging.Publisher, logger *slog.Logger) *Dependencies {
	return NewDependencies(store.NewPgProductRepository(dbPool), store.NewPgStoreRepository(dbPool), publisher, logger)
}

// NewDependencies builds the services over the given repositories.
func NewDependencies(products store.ProductRepository, stores store.StoreRepository, publisher messaging.Publisher, logger *slog.Logger, opts ...service.AssociationOption) *Dependencies {
	return &Dependencies{
		ProductService:     service.NewProductService(products),
		StoreService:       service.NewStoreService(stores),
		AssociationService: service.NewAssociationService(products, stores, publisher, logger, opts...),
		Logger:             logger,
	}
}

// SetupPublisher returns the publisher for association events. With NATS disabled events are discarded;
// otherwise the stream is ensured and publishing goes through a circuit breaker.
// The returned close function releases the connection.
func SetupPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (messaging.Publisher, func(), error) {
	if !cfg.Nats.Enabled {
		logger.Info("NATS is disabled, association events are discarded")
		return messaging.NoopPublisher{}, func() {}, nil
	}
	nc, err := natsclient.NewClient(cfg.Nats.Url, cfg.Nats.Timeout)
	if err != nil {
		return nil, nil, err
	}
	js, err := natsclient.NewJetStreamContext(nc)
	if err != nil {
		return nil, nil, err
	}
	if err := natsclient.EnsureStream(ctx, js, cfg.Nats.Stream, messaging.StreamSubjects); err != nil {
		nc.Close()
		return nil, nil, err
	}
	logger.Info("Connected to NATS JetStream", slog.String("stream", cfg.Nats.Stream))

	publisher := messaging.NewBreakerPublisher(natsclient.NewNatsPublisher(js), cfg.Resilience.CircuitBreaker)
	closeFn := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("Failed to drain NATS connection", slog.Any("error", err))
		}
	}
	return publisher, closeFn, nil
}

// SetupHttpHandler initializes the routes for the CatalogService application.
// Used by E2E tests to set up the HTTP server with the necessary routes and middleware.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the CatalogService application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	catalogHandler := rest.NewHandler(deps.ProductService, deps.StoreService, deps.AssociationService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
	if deps.MetricsHandler != nil {
		mux.Method(http.MethodGet, deps.MetricsPath, deps.MetricsHandler)
	}
}

// SetupHttpServer creates and configures an HTTP server for the CatalogService application.
// Every request is traced and measured by otelhttp.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	handler := otelhttp.NewHandler(SetupHttpHandler(deps), "catalog-http")
	return server.NewHTTPServer(cfg.HTTPServer, handler)
}

// SetupGrpcServer initializes the gRPC server exposing the health service.
func SetupGrpcServer(reflectionEnabled bool) (*grpc.Server, *health.Server) {
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return server.NewGRPCServer(reflectionEnabled, server.WithHealth(healthServer)), healthServer
}
