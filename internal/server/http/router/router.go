package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/metrics"
	"github.com/polkiloo/storefront/internal/server/http/handlers"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
)

// Setup configures gin router with the routes of the configured service.
func Setup(cfg *config.Config, facade handlers.ShopFacade, m *metrics.HTTP, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))
	engine.Use(middleware.Timeout(cfg.RequestTimeout))

	healthHandler := handlers.NewHealthHandler(facade, cfg.Service.Name(), logger)
	engine.GET("/health", healthHandler.Live)
	engine.GET("/health/ready", healthHandler.Ready)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	authRequired := middleware.AuthRequired(facade, logger)
	adminOnly := middleware.RequireAdmin(facade)

	switch cfg.Service {
	case config.ServiceOrders:
		registerOrders(engine, facade, logger, authRequired, adminOnly)
	case config.ServiceCart:
		registerCart(engine, facade, logger, authRequired)
	case config.ServiceCatalog:
		registerCatalog(engine, facade, logger, authRequired, adminOnly)
	}

	return engine
}

func registerOrders(engine *gin.Engine, facade handlers.OrderFacade, logger *slog.Logger, authRequired, adminOnly gin.HandlerFunc) {
	orderHandler := handlers.NewOrderHandler(facade, logger)

	orders := engine.Group("/orders")
	orders.Use(authRequired)
	orders.POST("", orderHandler.Create)
	orders.GET("/my-orders", orderHandler.My)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("", adminOnly, orderHandler.All)
	orders.PATCH("/:id/status", adminOnly, orderHandler.UpdateStatus)
}

type cartFacade interface {
	handlers.CartFacade
	handlers.WishlistFacade
}

func registerCart(engine *gin.Engine, facade cartFacade, logger *slog.Logger, authRequired gin.HandlerFunc) {
	cartHandler := handlers.NewCartHandler(facade, logger)
	wishlistHandler := handlers.NewWishlistHandler(facade, logger)

	cart := engine.Group("/cart")
	cart.Use(authRequired)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:itemId", cartHandler.UpdateItem)
	cart.DELETE("/items/:itemId", cartHandler.RemoveItem)

	wishlist := engine.Group("/wishlist")
	wishlist.Use(authRequired)
	wishlist.GET("", wishlistHandler.List)
	wishlist.POST("", wishlistHandler.Add)
	wishlist.DELETE("/:productId", wishlistHandler.Remove)
}

func registerCatalog(engine *gin.Engine, facade handlers.CatalogFacade, logger *slog.Logger, authRequired, adminOnly gin.HandlerFunc) {
	productHandler := handlers.NewProductHandler(facade, logger)
	categoryHandler := handlers.NewCategoryHandler(facade, logger)

	products := engine.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", authRequired, adminOnly, productHandler.Create)
	products.PUT("/:id", authRequired, adminOnly, productHandler.Update)
	products.DELETE("/:id", authRequired, adminOnly, productHandler.Delete)

	categories := engine.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", authRequired, adminOnly, categoryHandler.Create)
	categories.DELETE("/:id", authRequired, adminOnly, categoryHandler.Delete)
}
