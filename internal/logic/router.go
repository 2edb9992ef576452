package logic

import (
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	AllowedOrigins     []string // empty or ["*"] allows any origin
	RateLimitPerMinute int      // applied to write endpoints
}

// SetupRouter wires middleware and routes.
func SetupRouter(h *Handler, rc RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(ginzap.Ginzap(h.log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(h.log, true))
	r.Use(RequestID())
	r.Use(cors.New(corsConfig(rc.AllowedOrigins)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	limited := RateLimit(rc.RateLimitPerMinute)

	api := r.Group("/api")
	api.POST("/checkin", limited, h.CheckInHandler)
	api.GET("/calendar", h.CalendarHandler)
	api.GET("/analysis", h.AnalysisHandler)
	api.GET("/analysis/:userId", h.AnalysisHandler)
	api.GET("/status/:userId", h.StatusHandler)
	api.GET("/summary", h.SummaryHandler)
	api.GET("/quote", h.QuoteHandler)
	api.GET("/resources", h.GetResourcesHandler)
	api.POST("/resource", limited, h.CreateResourceHandler)
	api.POST("/coach", limited, h.ChatHandler)
	api.GET("/coach/history", h.ChatHistoryHandler)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
