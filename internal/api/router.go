package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fetscr/internal/auth"
	"fetscr/internal/config"
	"fetscr/internal/history"
	"fetscr/internal/search"
	"fetscr/internal/user"
)

// SetupRouter wires the HTTP surface. Every dependency comes in
// explicitly; there is no package-level state.
func SetupRouter(cfg *config.Config, log *logrus.Logger, users user.Store, hist history.Store, agg *search.Aggregator) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.GET("/health", healthHandler)

	// Public auth routes
	r.POST("/signup", SignupHandler(users))
	r.POST("/login", LoginHandler(cfg, users))

	// Protected routes
	secret := cfg.Server.JWTSecret
	r.POST("/scrape", auth.Middleware(secret), ScrapeHandler(agg, hist))
	r.GET("/my-scrapes", auth.Middleware(secret), MyScrapesHandler(hist))

	return r
}
