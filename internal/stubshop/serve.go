package stubshop

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// StartServer binds the stub storefront to the given address and serves it
// in the background. An address of ":0" picks a free port; the listener's
// address is the storefront base URL.
func StartServer(s *Server, addr string, logger *log.Logger) (net.Listener, *http.Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{Handler: s}

	go func() {
		logger.Info("stub storefront listening", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("stub storefront server error", "err", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown blocks until an interrupt or terminate signal arrives,
// then drains the server. A nil shutdown channel registers the default
// signals.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger *log.Logger) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	}

	sig := <-shutdown
	logger.Info("received signal, shutting down stub storefront", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("stub storefront stopped")
	return nil
}
