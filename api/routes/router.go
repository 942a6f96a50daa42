// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"festtix/docs"
	"festtix/internal/analytics"
	"festtix/internal/auth"
	"festtix/internal/checkin"
	"festtix/internal/eventdays"
	"festtix/internal/notifications"
	"festtix/internal/orders"
	"festtix/internal/payments"
	"festtix/internal/shared/config"
	"festtix/internal/shared/database"
	"festtix/internal/shared/middleware"
	"festtix/internal/tickets"
	"festtix/internal/vip"
	"festtix/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher notifications.TicketEmailPublisher
	gateway   payments.Gateway
	auth      gin.HandlerFunc

	// populated by SetupRoutes for the background jobs
	OrderService orders.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.TicketEmailPublisher) *Router {
	r := &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		gateway:   payments.NewStripeGateway(cfg.Stripe),
		auth:      middleware.JWTAuthWithConfig(cfg),
	}
	if rdb := db.GetRedisClient(); rdb != nil {
		r.cache = cache.NewService(rdb)
	}
	return r
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		auth.NewRouter(auth.NewController(auth.NewService(auth.NewRepository(r.db.GetPostgreSQL()), r.config)), r.config).SetupRoutes(api)

		tickets.SetupTicketRoutes(api, tickets.NewController())

		dayService := eventdays.NewService(eventdays.NewRepository(r.db.GetPostgreSQL()))
		r.withCache(dayService.SetCacheService)
		eventdays.SetupEventDayRoutes(api, eventdays.NewController(dayService))

		vipService := vip.NewService(vip.NewRepository(r.db.GetPostgreSQL()), dayService)
		r.withCache(vipService.SetCacheService)

		orderService := orders.NewService(orders.NewRepository(r.db.GetPostgreSQL()), r.gateway, vipService, r.publisher, r.config.Festival, r.config.Stripe.Currency)
		r.withCache(orderService.SetCacheService)
		vipService.SetOrderLookup(orderService)
		r.OrderService = orderService

		vip.SetupVIPRoutes(api, vip.NewController(vipService))
		orders.SetupOrderRoutes(api, orders.NewController(orderService), r.auth)
		payments.SetupPaymentRoutes(api, payments.NewController(r.gateway, orders.NewPaymentEventAdapter(orderService)))

		checkinService := checkin.NewService(checkin.NewRepository(r.db.GetPostgreSQL()))
		r.withCache(checkinService.SetCacheService)
		checkin.SetupCheckinRoutes(api, checkin.NewController(checkinService), r.auth)

		analyticsService := analytics.NewService(analytics.NewRepository(r.db.GetPostgreSQL()))
		r.withCache(analyticsService.SetCacheService)
		analytics.SetupAnalyticsRoutes(api, analytics.NewController(analyticsService), r.auth)
	}
}

func (r *Router) withCache(set func(cache.Service)) {
	if r.cache != nil {
		set(r.cache)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "festtix-backend",
			})
			return
		}

		status := gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "festtix-backend",
		}
		if r.publisher != nil {
			if err := r.publisher.HealthCheck(c.Request.Context()); err != nil {
				status["ticket_email_queue"] = "degraded: " + err.Error()
			} else {
				status["ticket_email_queue"] = "ok"
			}
		}
		c.JSON(http.StatusOK, status)
	})

	if r.config.IsDevelopment() {
		docs.SwaggerInfo.BasePath = r.config.GetAPIBasePath()
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}
