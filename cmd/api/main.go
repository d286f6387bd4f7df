package main

import (
	"context"
	"time"

	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/database/postgres"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/integrator/market/marketclient"
	"github.com/sellerpulse/marketplace-ledger-api/infrastructure/repository"
	"github.com/sellerpulse/marketplace-ledger-api/internal/api"
	"github.com/sellerpulse/marketplace-ledger-api/internal/config"
	"github.com/sellerpulse/marketplace-ledger-api/internal/scheduler"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/authenticating"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/cataloging"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/ingesting"
	"github.com/sellerpulse/marketplace-ledger-api/internal/usecases/reporting"
	"github.com/sellerpulse/marketplace-ledger-api/pkg/crypto"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, falling back to info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	cipher := crypto.New(cfg.EncryptionKey)

	projectRepo := repository.NewProjectRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)
	sellerConfigRepo := repository.NewSellerConfigRepository(pgConn, cipher)
	ledgerRepo := repository.NewDailyLedgerRepository(pgConn)
	skuRepo := repository.NewSkuDailyRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	marketClient := marketclient.NewClient(cfg)
	marketIntegrator := market.New(cfg, marketClient)

	ingestService := ingesting.NewService(cfg, marketIntegrator, sellerConfigRepo, ledgerRepo, skuRepo)
	catalogService := cataloging.NewService(cfg, marketIntegrator, sellerConfigRepo, productRepo)
	reportService := reporting.NewService(ledgerRepo, skuRepo, productRepo)

	ledgerSyncService := scheduler.NewLedgerSyncService(projectRepo, ingestService, cfg)
	if err := ledgerSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("starting ledger sync scheduler")
	}

	server, err := api.New(
		cfg,
		ingestService,
		catalogService,
		reportService,
		authenticator,
		sellerConfigRepo,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("connecting to PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
