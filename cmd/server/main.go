package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"fetscr/internal/api"
	"fetscr/internal/cache"
	"fetscr/internal/config"
	"fetscr/internal/db"
	"fetscr/internal/history"
	"fetscr/internal/search"
	"fetscr/internal/user"
)

const providerTimeout = 30 * time.Second

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(level)
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		logger.Fatalf("Config error: %v", err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logger.Fatalf("DB init error: %v", err)
	}
	logger.Info("Database connected and migrated")

	users := user.NewStore(conn)
	hist := history.NewStore(conn)

	provider := search.NewGoogleClient(cfg.Google.APIKey, cfg.Google.CX, cfg.Google.BaseURL, providerTimeout)
	var pageCache search.PageCache
	if pc := cache.NewPageCache(cfg); pc != nil {
		pageCache = pc
		logger.WithField("addr", cfg.Redis.Addr).Info("Page cache enabled")
	}
	agg := search.NewAggregator(provider, pageCache, logger)

	r := api.SetupRouter(cfg, logger, users, hist, agg)
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.WithField("addr", addr).Info("Starting server")
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Server error: %v", err)
	}
}
