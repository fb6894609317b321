package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/boychukmk/library/internal/shared/middleware"
	"github.com/boychukmk/library/internal/shared/response"
	"github.com/boychukmk/library/pkg/container"
)

// SetupRouter wires all routes. Reads are public; every write to the
// catalog sits behind JWT auth.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupBookRoutes(v1, c)
		setupAuthorRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.GetByID)
	}

	protected := v1.Group("/books")
	protected.Use(middleware.Auth(c.JWTManager))
	{
		protected.POST("", c.BookHandler.Create)
		protected.PUT("/:id", c.BookHandler.Update)
		protected.DELETE("/:id", c.BookHandler.Delete)
		protected.POST("/bulk-import", c.ImportHandler.Import)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.GetByID)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "database health check failed")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "healthy",
			"version": c.Config.App.Version,
		})
	}
}
