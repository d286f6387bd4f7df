package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/api/handler"
	"github.com/sellerpulse/marketplace-ledger-api/internal/api/handler/router"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/authenticating"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/cataloging"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/reporting"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	ingestService ingesting.Ingestor,
	catalogService cataloging.Cataloger,
	reportService reporting.Reporter,
	authenticator authenticating.Authenticator,
	sellerConfigRepo repository.SellerConfigRepository,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Ledger(reportService)...),
		router.WithRoutes(handler.Sync(ingestService, catalogService)...),
		router.WithRoutes(handler.Credentials(sellerConfigRepo)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("interrupt signal received")
	case <-ctx.Done():
		logrus.Info("application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during server shutdown")
		return err
	}

	logrus.Info("server shut down cleanly")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
