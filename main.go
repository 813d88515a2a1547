package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/setoran/backend/internal/auth"
	"github.com/setoran/backend/internal/config"
	"github.com/setoran/backend/internal/models"
	"github.com/setoran/backend/internal/router"
)

// prepare sets up logging and validates the configuration before gin's
// mode is set. gin panics for unknown modes.
func prepare(cfg *config.Config) error {
	output := io.Writer(os.Stdout)
	if cfg.HumanLogs() {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel())
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)
	return nil
}

func main() {
	// A .env file is optional, the environment always takes precedence
	_ = godotenv.Load()

	cfg := config.Load()
	if err := prepare(cfg); err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	// Connect to the database. Migrations run on every start
	var err error
	if cfg.UsePostgres() {
		err = models.ConnectPostgres(cfg.DatabaseURL)
	} else {
		err = os.MkdirAll(cfg.DataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		err = models.Connect(cfg.SQLitePath())
	}
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	url := cfg.BaseURL()
	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	path := url.Path
	if path == "" {
		path = "/"
	}
	router.AttachRoutes(r.Group(path), auth.NewJWT(cfg.JWTSecret))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
