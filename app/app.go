package app

import (
	"os"
	"os/signal"
	"syscall"

	"gig-marketplace-api/internal/controller"
	"gig-marketplace-api/internal/notifier"
	"gig-marketplace-api/internal/repo"
	"gig-marketplace-api/internal/service"
	"gig-marketplace-api/pkg/http_server"
	"gig-marketplace-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string, logger zerolog.Logger) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		logger.Fatal().Err(err).Msg("migration driver")
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		logger.Fatal().Err(err).Msg("migration setup")
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.Info().Msg("no change made by migration scripts")
		} else {
			logger.Fatal().Err(err).Msg("migration up")
		}
	}
}

func Run() {
	logger := log.With().Str("component", "app").Logger()

	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")
	jwtSecretEnv := os.Getenv("JWT_SECRET")

	if jwtSecretEnv == "" {
		logger.Fatal().Msg("JWT_SECRET must be set")
	}

	logger.Info().Msg("Connecting database...")
	postgresDB, err := postgres.NewDB(dbConnEnv)
	if err != nil {
		logger.Fatal().Err(err).Msg("Error occurred while connecting to db")
	}
	defer postgresDB.Close()

	if err := postgresDB.Database.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("Database is unreachable")
	}

	logger.Info().Msg("Running migrations...")
	runMigrations(postgresDB, databaseEnv, logger)

	repositories := repo.NewRepositories(postgresDB)
	hub := notifier.NewHub(log.Logger)
	services := service.NewServices(repositories, hub, log.Logger)
	handler := echo.New()

	logger.Info().Msg("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, hub, []byte(jwtSecretEnv))

	logger.Info().Msg("Starting server...")
	httpServer := http_server.New(handler, serverAddressEnv)

	logger.Info().Str("address", serverAddressEnv).Msg("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info().Str("signal", s.String()).Msg("Got signal")
	case err = <-httpServer.Notify():
		logger.Fatal().Err(err).Msg("Notify error")
	}

	logger.Info().Msg("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		logger.Fatal().Err(err).Msg("Shutdown error")
	}
	logger.Info().Msg("Successful shutdown")
}
