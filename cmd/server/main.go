package main

import (
	"log"
	"net/http"

	_ "loginapi/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"loginapi/internal/auth"
	"loginapi/internal/cache"
	"loginapi/internal/config"
	"loginapi/internal/handler"
	"loginapi/internal/repository"
	"loginapi/internal/router"
	"loginapi/internal/service"
)

// @title Login API
// @version 1.0
// @description Credential management API: registration, login, and user record access with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// The user collection lives in memory for the process lifetime.
	userRepo := repository.NewMemoryUserRepository()

	jwtService := auth.NewJWTService(cfg.JWTSecret)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	router.Register(e, cfg, authHandler, userHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("Server running on port %s", cfg.ServerPort)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
