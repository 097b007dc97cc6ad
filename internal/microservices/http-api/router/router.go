package router

import (
	"log/slog"
	"slices"
	"time"

	"novelhub/internal/config"
	"novelhub/internal/microservices/http-api/handler"
	"novelhub/internal/microservices/http-api/middleware"
	"novelhub/internal/microservices/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps is everything the HTTP API needs from the outside.
type Deps struct {
	Config    *config.Config
	Logger    *slog.Logger
	Auth      service.AuthService
	Catalog   service.CatalogService
	Bookshelf service.BookshelfService
	Profile   service.ProfileService
	Admin     service.AdminService
	Ping      handler.Pinger
}

// NewRouter builds the gin engine with the full route table.
func NewRouter(d Deps) *gin.Engine {
	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Logger))
	r.Use(cors.New(corsConfig(d.Config.CORSOrigins)))

	r.Static("/images", d.Config.ImagesPath)
	handler.NewHealthHandler(d.Ping).RegisterRoutes(r)

	api := r.Group("/api", middleware.RequestTimeout(d.Config.RequestTimeout))

	limiter := middleware.NewIPRateLimiter(d.Config.LoginRateLimit, d.Config.LoginRateBurst)
	handler.NewAuthHandler(d.Auth).RegisterRoutes(api, limiter.Middleware())
	handler.NewNovelHandler(d.Catalog).RegisterRoutes(api)
	handler.NewChapterHandler(d.Catalog).RegisterRoutes(api)
	handler.NewBookshelfHandler(d.Bookshelf).RegisterRoutes(api)
	handler.NewProfileHandler(d.Profile).RegisterRoutes(api)

	admin := api.Group("/admin", middleware.AuthMiddleware(d.Auth), middleware.RequireAdmin())
	handler.NewAdminHandler(d.Admin).RegisterRoutes(admin)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
