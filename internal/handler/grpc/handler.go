package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/logger"
)

// ConfigService is the health service name that reports whether an
// effective configuration is loaded.
const ConfigService = "partialconfig.Config"

// ConfigProvider returns the configuration currently in effect.
type ConfigProvider interface {
	Current() *config.ServerConfig
}

// Handler is the root gRPC transport handler. It exposes the standard
// health service, whose status follows the configuration provider, and
// server reflection.
type Handler struct {
	configs ConfigProvider
	health  *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reading the configuration from configs.
func NewHandler(configs ConfigProvider, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		configs: configs,
		health:  health.NewServer(),
		logger:  logger,
	}
}

// Init registers the handler's services on s and publishes the initial
// health status.
func (h *Handler) Init(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
	h.Refresh()
}

// Refresh sets the health status from the current configuration: SERVING
// when one is loaded, NOT_SERVING otherwise.
func (h *Handler) Refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if h.configs.Current() != nil {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ConfigService, status)
	h.logger.Debug().Str("status", status.String()).Msg("gRPC health status updated")
}

// Shutdown reports NOT_SERVING for every service so clients stop sending
// requests before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
