package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	_ "recipebox/docs" // swagger docs

	"recipebox/internal/auth"
	"recipebox/internal/cache"
	"recipebox/internal/clock"
	"recipebox/internal/config"
	"recipebox/internal/db"
	"recipebox/internal/handler"
	"recipebox/internal/model"
	"recipebox/internal/repository"
	"recipebox/internal/router"
	"recipebox/internal/service"
)

// @title Recipebox API
// @version 1.0
// @description Personal recipe tracking API: favorites, cooking progress and an activity log behind JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
	}()

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Activity{},
			&model.Progress{},
			&model.Favorite{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Favorite{},
		&model.Progress{},
		&model.Activity{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable; refresh tokens degrade to signature-only validation")
	}

	clk := clock.System()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, txManager, jwtService, tokenStore, clk)
	favoriteService := service.NewFavoriteService(favoriteRepo, txManager, clk)
	progressService := service.NewProgressService(progressRepo, txManager, clk)
	activityService := service.NewActivityService(activityRepo, txManager, clk)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	progressHandler := handler.NewProgressHandler(progressService)
	activityHandler := handler.NewActivityHandler(activityService)

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(
		e,
		cfg,
		authHandler,
		favoriteHandler,
		progressHandler,
		activityHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
