package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/rs/zerolog"       // structured logging

	"github.com/holocron/catalog-api/internal/config"
	"github.com/holocron/catalog-api/internal/database"
	"github.com/holocron/catalog-api/internal/handler"
	"github.com/holocron/catalog-api/internal/repository"
	"github.com/holocron/catalog-api/internal/router"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("schema migration failed")
	}

	users := repository.NewUserRepo(db)
	people := repository.NewPeopleRepo(db)
	planets := repository.NewPlanetRepo(db)
	vehicles := repository.NewVehicleRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	tokens := repository.NewTokenRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Users:     handler.NewUserHandler(users),
		People:    handler.NewPeopleHandler(people),
		Planets:   handler.NewPlanetHandler(planets),
		Vehicles:  handler.NewVehicleHandler(vehicles),
		Favorites: handler.NewFavoriteHandler(favorites, users, people, planets, vehicles),
	}

	e := echo.New()
	router.Register(e, h, cfg.JWTSecret, tokens)

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
