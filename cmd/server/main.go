package main

import (
	"log"
	"net/http"

	_ "secureapp/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"secureapp/internal/auth"
	"secureapp/internal/cache"
	"secureapp/internal/config"
	"secureapp/internal/db"
	"secureapp/internal/handler"
	"secureapp/internal/model"
	"secureapp/internal/repository"
	"secureapp/internal/router"
	"secureapp/internal/service"
)

// @title Secure App API
// @version 1.0
// @description User registration, login and session-based authorization API.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)

	sessions := auth.NewSessions(cfg.SessionSecret, cfg.Production)
	limiter := auth.NewLoginLimiter(cacheClient)

	authService := service.NewAuthService(userRepo, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService, sessions, limiter)
	pageHandler := handler.NewPageHandler(sessions, userService)

	router.Register(e, authHandler, pageHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
