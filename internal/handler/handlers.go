// Package handler groups the transport handlers that publish the
// effective configuration.
package handler

import (
	"errors"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/handler/grpc"
	"github.com/appetrosyan/partial-config/internal/handler/http"
	"github.com/appetrosyan/partial-config/internal/logger"
)

var errNoHandlersAreCreated = errors.New("no handlers are created")

// ConfigProvider returns the configuration currently in effect.
type ConfigProvider interface {
	Current() *config.ServerConfig
}

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the HTTP handler always and the gRPC handler when
// cfg names a gRPC address.
func NewHandlers(configs ConfigProvider, version string, cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if configs == nil || cfg == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(configs, version, logger.GetChildLogger("http")),
	}
	if cfg.GRPCAddress != nil {
		handlers.GRPC = grpc.NewHandler(configs, logger.GetChildLogger("grpc"))
	}

	return handlers, nil
}
