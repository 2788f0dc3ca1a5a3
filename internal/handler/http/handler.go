package http

import (
	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/logger"
)

// ConfigProvider returns the configuration currently in effect.
type ConfigProvider interface {
	Current() *config.ServerConfig
}

type Handler struct {
	configs ConfigProvider
	version string

	logger *logger.Logger
}

func NewHandler(configs ConfigProvider, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		configs: configs,
		version: version,
		logger:  logger,
	}
}
