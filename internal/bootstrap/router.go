package bootstrap

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/rebeat-kr/souvenir-backend/internal/api/http"
	"github.com/rebeat-kr/souvenir-backend/internal/api/http/middleware"
	cataloghttp "github.com/rebeat-kr/souvenir-backend/internal/catalog/http"
	catalogrepo "github.com/rebeat-kr/souvenir-backend/internal/catalog/repository"
	sketchhttp "github.com/rebeat-kr/souvenir-backend/internal/sketch/http"
	"github.com/rebeat-kr/souvenir-backend/internal/sketch/session"
	souvenirhttp "github.com/rebeat-kr/souvenir-backend/internal/souvenir/http"
	souvenirrepo "github.com/rebeat-kr/souvenir-backend/internal/souvenir/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins string
	RateLimitRPS   int
	RateLimitBurst int

	Redis    *redis.Client
	DB       *pgxpool.Pool
	Ideas    souvenirhttp.IdeaGenerator
	Sketches *session.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(dep.AllowedOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	orderRepo := souvenirrepo.NewOrderRepository(dep.Redis)
	souvenirHandler := souvenirhttp.NewHandler(dep.Ideas, orderRepo)
	souvenirHandler.Register(api.Group("/souvenirs"),
		middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	sketchHandler := sketchhttp.NewHandler(dep.Sketches)
	sketchHandler.Register(api.Group("/sketch"))

	catalogRepo := catalogrepo.NewCatalogRepository(dep.DB)
	catalogHandler := cataloghttp.NewHandler(catalogRepo)
	catalogHandler.Register(api.Group("/catalog"))

	return r
}

func corsMiddleware(allowedOrigins string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "X-Request-Id")

	if allowedOrigins == "" || allowedOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(allowedOrigins, ",")
	}

	return cors.New(cfg)
}
