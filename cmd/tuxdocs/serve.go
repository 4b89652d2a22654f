package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tuxhttp "github.com/jkantihub-ai/tuxdocs2/http"
	"go.uber.org/zap"
)

// Run executes the serve command. It blocks until the process is
// interrupted, then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	server := tuxhttp.NewServer(deps.Docs, deps.Proposals, deps.Oracle, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(c.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case <-deps.Ctx.Done():
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Stop(ctx)
}
