package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rebeat-kr/souvenir-backend/config"
	"github.com/rebeat-kr/souvenir-backend/internal/bootstrap"
	"github.com/rebeat-kr/souvenir-backend/internal/sketch/session"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/gemini"
	"github.com/rebeat-kr/souvenir-backend/internal/souvenir/service"
)

const serviceName = "souvenir-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.URL})
	if err != nil {
		log.Printf("catalog db unavailable, serving seed data: %v", err)
		db = nil
	}

	geminiClient, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.ConceptModel, cfg.Gemini.ImageModel)
	if err != nil {
		log.Fatalf("gemini: %v", err)
	}

	sketchStore := session.NewStore(30 * time.Minute)
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every 5m", func() {
		if n := sketchStore.Sweep(); n > 0 {
			log.Printf("[sketch] swept %d idle sessions", n)
		}
	}); err != nil {
		log.Fatalf("cron: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.App.AllowedOrigins,
		RateLimitRPS:   cfg.App.RateLimitRPS,
		RateLimitBurst: cfg.App.RateLimitBurst,
		Redis:          redisClient,
		DB:             db,
		Ideas:          service.NewIdeaService(geminiClient),
		Sketches:       sketchStore,
	})

	log.Printf("%s v%s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
