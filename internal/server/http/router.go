// Package http serves the JSON API over gin.
package http

import (
	"github.com/dmitrijs2005/skillboard/internal/logging"
	"github.com/dmitrijs2005/skillboard/internal/server/http/handlers"
	"github.com/dmitrijs2005/skillboard/internal/server/http/middleware"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProfileHandler *handlers.ProfileHandler
	HealthHandler  *handlers.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Logger         logging.Logger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogger(cfg.Logger))
	}
	r.Use(middleware.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
		if cfg.ProfileHandler != nil {
			api.GET("/profiles", cfg.ProfileHandler.List)
			api.GET("/profiles/:id", cfg.ProfileHandler.Get)
		}
	}

	me := api.Group("/profile/me")
	{
		if cfg.AuthMiddleware != nil {
			me.Use(cfg.AuthMiddleware.RequireToken())
		}
		if cfg.ProfileHandler != nil {
			me.GET("", cfg.ProfileHandler.GetMine)
			me.PUT("", cfg.ProfileHandler.UpsertMine)
			me.POST("/avatar", cfg.ProfileHandler.AvatarUpload)
		}
	}

	return r
}
