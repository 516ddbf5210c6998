package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bookstore-backoffice/internal/shared/middleware"
	"bookstore-backoffice/internal/shared/response"
	"bookstore-backoffice/pkg/container"
)

// SetupRouter builds the gin engine and mounts every route group.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	api := router.Group("/api")

	api.GET("/health", healthHandler(c))
	api.GET("/info", infoHandler(c))

	books := api.Group("/books")
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/all", c.BookHandler.ListAllBooks)
		books.GET("/available", c.BookHandler.ListAvailableBooks)
		books.GET("/featured", c.BookHandler.ListFeaturedBooks)
		books.GET("/categories", c.BookHandler.ListCategories)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.GET("/price-range", c.BookHandler.ListBooksByPriceRange)
		books.POST("/bulk-import", c.BookHandler.ImportBooks)
		books.GET("/:id", c.BookHandler.GetBook)
		books.PUT("/:id", c.BookHandler.UpdateBook)
		books.DELETE("/:id", c.BookHandler.DeleteBook)
		books.PUT("/:id/stock", c.BookHandler.UpdateStock)
		books.PUT("/:id/toggle-availability", c.BookHandler.ToggleAvailability)
		books.POST("/:id/image", c.BookHandler.UploadImage)
	}

	customers := api.Group("/customers")
	{
		customers.POST("", c.CustomerHandler.CreateCustomer)
		customers.GET("", c.CustomerHandler.ListCustomers)
		customers.GET("/active", c.CustomerHandler.ListActiveCustomers)
		customers.GET("/search", c.CustomerHandler.SearchCustomers)
		customers.GET("/by-city", c.CustomerHandler.ListCustomersByCity)
		customers.GET("/by-country", c.CustomerHandler.ListCustomersByCountry)
		customers.GET("/:id", c.CustomerHandler.GetCustomer)
		customers.PUT("/:id", c.CustomerHandler.UpdateCustomer)
		customers.PUT("/:id/toggle-status", c.CustomerHandler.ToggleCustomerStatus)
		customers.DELETE("/:id", c.CustomerHandler.DeactivateCustomer)
		customers.DELETE("/:id/permanent", c.CustomerHandler.DeleteCustomer)
	}

	completeOrders := api.Group("/complete-orders")
	{
		completeOrders.POST("", c.OrderHandler.CreateOrder)
		completeOrders.POST("/simple", c.OrderHandler.CreateSimpleOrder)
	}

	orders := api.Group("/orders")
	{
		orders.GET("", c.OrderHandler.ListOrders)
		orders.GET("/by-number/:orderNumber", c.OrderHandler.GetOrderByNumber)
		orders.GET("/:id", c.OrderHandler.GetOrder)
		orders.PUT("/:id/status", c.OrderHandler.UpdateOrderStatus)
	}

	packs := api.Group("/packs")
	{
		packs.POST("", c.PackHandler.CreatePack)
		packs.GET("", c.PackHandler.ListPacks)
		packs.GET("/active", c.PackHandler.ListActivePacks)
		packs.GET("/featured", c.PackHandler.ListFeaturedPacks)
		packs.GET("/categories", c.PackHandler.ListPackCategories)
		packs.GET("/by-category", c.PackHandler.ListPacksByCategory)
		packs.GET("/search", c.PackHandler.SearchPacks)
		packs.GET("/:id", c.PackHandler.GetPack)
		packs.PUT("/:id", c.PackHandler.UpdatePack)
		packs.PUT("/:id/toggle-featured", c.PackHandler.ToggleFeatured)
		packs.DELETE("/:id", c.PackHandler.DeactivatePack)
	}

	offers := api.Group("/daily-offers")
	{
		offers.POST("", c.OfferHandler.CreateOffer)
		offers.GET("", c.OfferHandler.ListOffers)
		offers.GET("/active", c.OfferHandler.ListActiveOffers)
		offers.GET("/current", c.OfferHandler.ListCurrentOffers)
		offers.GET("/by-book/:bookId", c.OfferHandler.ListOffersByBook)
		offers.GET("/by-pack/:packId", c.OfferHandler.ListOffersByPack)
		offers.GET("/:id", c.OfferHandler.GetOffer)
		offers.PUT("/:id", c.OfferHandler.UpdateOffer)
		offers.DELETE("/:id", c.OfferHandler.DeleteOffer)
	}

	statistics := api.Group("/statistics")
	{
		statistics.GET("/dashboard", c.StatsHandler.Dashboard)
		statistics.GET("/books", c.StatsHandler.BookCounts)
		statistics.GET("/customers", c.StatsHandler.CustomerCounts)
		statistics.GET("/orders", c.StatsHandler.OrderCounts)
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "healthy"
		code := http.StatusOK

		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
			status = "degraded"
		}

		ctx.JSON(code, gin.H{
			"status":    status,
			"version":   c.Config.App.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"database":  dbStatus,
			"cache":     cacheStatus,
		})
	}
}

func infoHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
