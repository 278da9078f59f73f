// Package server assembles the HTTP API.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"agroconsult/internal/config"
	"agroconsult/internal/domain/client"
	"agroconsult/internal/domain/evaluation"
	"agroconsult/internal/domain/health"
	"agroconsult/internal/domain/plot"
	"agroconsult/internal/domain/product"
	"agroconsult/internal/domain/property"
	"agroconsult/internal/domain/salesorder"
	"agroconsult/internal/domain/seed"
	"agroconsult/internal/domain/visit"
	"agroconsult/internal/middleware"
	"agroconsult/internal/pkg/jwt"
	"agroconsult/internal/pkg/response"
)

// NewRouter mounts every resource under /api. Mutating routes require a
// caller identity.
func NewRouter(cfg *config.Config, db *gorm.DB, log *slog.Logger) *gin.Engine {
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.ErrorLogger(log),
		middleware.CORS(cfg.CORSAllowedOrigins...),
		middleware.Actor(tokens, cfg.DefaultActor),
	)
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Not found")
	})

	write := middleware.RequireActor()
	api := r.Group("/api")

	health.NewHandler(db, cfg.DatabaseURLSet).RegisterRoutes(api)
	seed.NewHandler(seed.NewService(db)).RegisterRoutes(api, write)

	client.NewHandler(client.NewService(client.NewRepository(db))).RegisterRoutes(api, write)
	property.NewHandler(property.NewService(property.NewRepository(db))).RegisterRoutes(api, write)
	plot.NewHandler(plot.NewService(plot.NewRepository(db))).RegisterRoutes(api, write)
	product.NewHandler(product.NewService(product.NewRepository(db), cfg.StrictProductTypes)).RegisterRoutes(api, write)
	visit.NewHandler(visit.NewService(visit.NewRepository(db), cfg.StrictStatusTransitions)).RegisterRoutes(api, write)
	evaluation.NewHandler(evaluation.NewService(evaluation.NewRepository(db))).RegisterRoutes(api, write)
	salesorder.NewHandler(salesorder.NewService(salesorder.NewRepository(db), cfg.StrictStatusTransitions)).RegisterRoutes(api, write)

	return r
}
