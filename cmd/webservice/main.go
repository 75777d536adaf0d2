package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/libreriasansebastian/usuarios-service/config"
	"github.com/libreriasansebastian/usuarios-service/internal/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	postgresDriver "github.com/libreriasansebastian/usuarios-service/internal/infrastructure/database/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Exiting")
	}
}

func run() error {
	conf := config.CreateNewConfig()

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := app.App{
		Config: conf,
	}

	if conf.Storage == config.StoragePostgres {
		db, err := postgresDriver.GetDBInstance(conf.PostgreSQLConfig)
		if err != nil {
			log.Error().Err(err).Msg("Failed to connect to the database")
			return err
		}
		defer db.Close()

		if err := postgresDriver.CreateSchema(ctx, db); err != nil {
			log.Error().Err(err).Msg("Failed to create the database schema")
			return err
		}
		server.DB = db
	}

	if err := server.Setup(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to set up the server")
		return err
	}

	log.Info().Str("port", conf.ServicePort).Str("storage", conf.Storage).Msg("Starting server")
	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Server failed")
		return err
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
