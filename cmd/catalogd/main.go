package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cineflow/catalogd/internal/cache"
	"github.com/cineflow/catalogd/internal/config"
	"github.com/cineflow/catalogd/internal/database"
	"github.com/cineflow/catalogd/internal/handlers"
	"github.com/cineflow/catalogd/internal/middleware"
	"github.com/cineflow/catalogd/internal/services"
	"github.com/cineflow/catalogd/pkg/logger"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[app] failed to load configuration: %v", err)
	}

	memCache := cache.New(cfg.CacheSize, cfg.CacheTTL)

	catalog := services.NewCatalog(cfg.APIBaseURL, cfg.ImageBaseURL, cfg.PageSize, cfg.CacheTTL, memCache, log)

	var db database.Database
	if cfg.DatabasePath != "" {
		bolt, err := database.NewBolt(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("[app] failed to open database: %v", err)
		}
		defer bolt.Close()
		db = bolt
		catalog.SetDB(db)
	}

	container := &services.Container{
		Catalog: catalog,
		Cache:   memCache,
		DB:      db,
		Logger:  log,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	memCache.StartCleanup(ctx)
	if db != nil {
		go expireLoop(ctx, db, cfg.CacheTTL, log)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS())
	r.Use(middleware.Gzip())

	h := handlers.New(container, cfg)
	h.RegisterRoutes(r)

	log.Infof("[app] serving catalog for %s on port %s", cfg.APIBaseURL, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[app] server stopped: %v", err)
	}
}

// expireLoop prunes aged post-detail rows from the persistent cache.
func expireLoop(ctx context.Context, db database.Database, ttl time.Duration, log logger.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := db.DeleteExpired(ttl); err != nil {
				log.Errorf("[app] failed to prune post cache: %v", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
