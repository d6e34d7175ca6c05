package api

import (
	"context"
	"net/http"
	"time"

	dealHandler "smartcart/internal/api/handlers/deals"
	favoriteHandler "smartcart/internal/api/handlers/favorites"
	"smartcart/internal/api/handlers/health"
	optimizeHandler "smartcart/internal/api/handlers/optimize"
	pantryHandler "smartcart/internal/api/handlers/pantry"
	listHandler "smartcart/internal/api/handlers/shoppinglist"
	suggestHandler "smartcart/internal/api/handlers/suggest"
	"smartcart/internal/api/middleware"
	"smartcart/internal/core/deals"
	"smartcart/internal/core/favorites"
	"smartcart/internal/core/optimizer"
	"smartcart/internal/core/pantry"
	"smartcart/internal/core/shoppinglist"
	"smartcart/internal/core/suggest"
	"smartcart/internal/infrastructure/config"
	"smartcart/internal/infrastructure/storage"
	"smartcart/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// per-request deadline; optimize is in-memory work plus two
	// snapshot reads, so this is generous
	timeoutDuration = 30 * time.Second
	// request body limit (1MB); the largest payload is a deal feed
	maxBodySize = 1 << 20
)

// Services bundles the wired application services the router exposes.
type Services struct {
	Optimizer *optimizer.Service
	Pantry    *pantry.Service
	Deals     *deals.Service
	DealRepo  *deals.Repository
	Lists     *shoppinglist.Service
	Favorites *favorites.Service
	Suggest   *suggest.Service
	DB        *storage.DB
}

// SetupRouter builds the gin engine and registers every route.
func SetupRouter(cfg *config.Config, svc *Services) *gin.Engine {
	common.LogInfo("starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.UserID())

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// request deadline
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeRequestTimeout,
			})
			c.Abort()
		}
	})

	healthH := health.NewHandler(cfg, svc.DB, svc.DealRepo)
	router.GET("/health", healthH.HandleHealth)
	router.GET("/ready", healthH.HandleReady)
	router.GET("/live", healthH.HandleLive)

	optimizeH := optimizeHandler.NewHandler(svc.Optimizer, svc.Lists)
	pantryH := pantryHandler.NewHandler(svc.Pantry)
	dealsH := dealHandler.NewHandler(svc.Deals)
	listsH := listHandler.NewHandler(svc.Lists)
	favoritesH := favoriteHandler.NewHandler(svc.Favorites)
	suggestH := suggestHandler.NewHandler(svc.Suggest)

	api := router.Group("/api")
	{
		api.POST("/optimize", optimizeH.HandleOptimize)
		api.GET("/optimize/meals", optimizeH.HandleMeals)
		api.GET("/optimize/categories", optimizeH.HandleCategories)

		api.GET("/suggestions", suggestH.HandleSuggestions)

		pantryGroup := api.Group("/pantry")
		{
			pantryGroup.GET("", pantryH.HandleList)
			pantryGroup.GET("/alerts", pantryH.HandleAlerts)
			pantryGroup.POST("", pantryH.HandleCreate)
			pantryGroup.PUT("/:productId", pantryH.HandleUpdate)
			pantryGroup.DELETE("/:productId", pantryH.HandleDelete)
			pantryGroup.POST("/:productId/adjust", pantryH.HandleAdjust)
		}

		dealGroup := api.Group("/deals")
		{
			dealGroup.GET("", dealsH.HandleList)
			dealGroup.POST("/import", dealsH.HandleImport)
		}

		listGroup := api.Group("/shopping-lists")
		{
			listGroup.GET("", listsH.HandleHistory)
			listGroup.GET("/:listId", listsH.HandleGet)
			listGroup.DELETE("/:listId", listsH.HandleDelete)
		}

		favGroup := api.Group("/favorites")
		{
			favGroup.GET("", favoritesH.HandleList)
			favGroup.POST("", favoritesH.HandleCreate)
			favGroup.GET("/:favoriteId", favoritesH.HandleGet)
			favGroup.POST("/:favoriteId/use", favoritesH.HandleUse)
			favGroup.DELETE("/:favoriteId", favoritesH.HandleDelete)
		}
	}

	common.LogInfo("router setup completed",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router
}
