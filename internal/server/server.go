package server

import (
	"context"
	"errors"
	"time"

	"github.com/appetrosyan/partial-config/internal/config"
	"github.com/appetrosyan/partial-config/internal/handler"
	"github.com/appetrosyan/partial-config/internal/logger"
)

const shutdownTimeout = 5 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds the HTTP listener at cfg.Address and, when cfg names a
// gRPC address and handlers carry a gRPC handler, the gRPC listener too.
func NewServer(handlers *handler.Handlers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.Address.String()).Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{logger: logger}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg.Address.String(), cfg.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}
	servers.httpServer = httpSrv

	if cfg.GRPCAddress != nil && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress.String(), logger)
		if err != nil {
			_ = httpSrv.listener.Close()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	return servers, nil
}

// Addr reports the bound HTTP address, which differs from the configured
// one when the port was 0.
func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) GRPCAddr() string {
	if s.gRPCServer == nil {
		return ""
	}
	return s.gRPCServer.listener.Addr().String()
}

func (s *server) RunServer(ctx context.Context) error {
	errCh := make(chan error, 2)
	running := 1

	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	if s.gRPCServer != nil {
		running++
		s.logger.Info().Str("address", s.GRPCAddr()).Msg("Launching GRPC server")
		go func() {
			errCh <- s.gRPCServer.RunServer()
		}()
	}

	var runErr error
	select {
	case runErr = <-errCh:
		running--
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := s.Shutdown(shutdownCtx)
	for ; running > 0; running-- {
		runErr = errors.Join(runErr, <-errCh)
	}
	if err := errors.Join(runErr, shutdownErr); err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	// finish HTTP server
	err := s.httpServer.Shutdown(ctx)

	// finish gRPC server
	if s.gRPCServer != nil {
		err = errors.Join(err, s.gRPCServer.Shutdown(ctx))
	}

	return err
}
