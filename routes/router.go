package routes

import (
	"net/http"
	"time"

	"civicreport-be/controllers"
	"civicreport-be/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

type Handlers struct {
	Auth      *controllers.AuthController
	Issues    *controllers.IssueController
	Locations *controllers.LocationController
	Analytics *controllers.AnalyticsController
}

type Options struct {
	Origins         []string
	JWTSecret       string
	Redis           *redis.Client
	RateLimitPrefix string
	ReportRateLimit int
}

// SetupRouter wires middleware and every API group onto a new engine.
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.Origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	AuthRoutes(api, h.Auth, opts)
	IssueRoutes(api, h.Issues, opts)
	LocationRoutes(api, h.Locations)
	AnalyticsRoutes(api, h.Analytics)
	return r
}
