package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"papertrade/api"
	"papertrade/internal/events"
	kafka_events "papertrade/internal/events/kafka"
	"papertrade/internal/repository"
	"papertrade/internal/service"
	"papertrade/internal/util"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConn, err := sql.Open("postgres", config.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	if err := runMigrations(config); err != nil {
		return nil, err
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	ledgerTransactionRepository := repository.NewLedgerTransactionRepository(dbConn)
	userSessionRepository := repository.NewUserSessionRepository(dbConn)
	quoteRepository := repository.NewQuoteRepository()

	var publisher events.Publisher = events.NewNoopPublisher()
	if len(config.KafkaBrokers) > 0 {
		publisher = kafka_events.NewPublisher(config.KafkaBrokers)
		zap.S().Infow("publishing transaction events", "brokers", config.KafkaBrokers)
	}

	ledgerService := service.NewLedgerService(
		dbConn,
		userAccountRepository,
		ledgerTransactionRepository,
		quoteRepository,
		publisher,
	)
	authService := service.NewAuthService(
		userAccountRepository,
		userSessionRepository,
		config.JwtSecret,
		config.StartingCash,
	)
	quoteService := service.NewQuoteService(quoteRepository)

	apiHandler := &api.ApiHandler{
		Db:            dbConn,
		AuthService:   authService,
		LedgerService: ledgerService,
		QuoteService:  quoteService,
	}

	return apiHandler, nil
}

func runMigrations(config *util.Config) error {
	m, err := migrate.New(
		"file://"+config.MigrationsDir,
		config.Db.ToMigrationUrl(),
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
