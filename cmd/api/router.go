package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"dacosta-backend/internal/shared/middleware"
	"dacosta-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	sessionConfig := middleware.DefaultSessionConfig()
	if os.Getenv("APP_ENV") == "development" {
		sessionConfig.CookieSecure = false
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c, sessionConfig)
		setupAuthRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ════════════════════════════════════════════════════════════════
// PUBLIC ROUTES - the site reads these without authentication
// ════════════════════════════════════════════════════════════════

func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container, sessionConfig middleware.SessionConfig) {
	v1.GET("/artists", c.ArtistHandler.ListPublic)
	v1.GET("/artists/:slug", c.ArtistHandler.GetBySlug)

	v1.GET("/events", c.EventHandler.ListMonth)
	v1.GET("/events/:id", c.EventHandler.GetByID)

	shop := v1.Group("/shop", middleware.Session(sessionConfig))
	{
		shop.GET("/products", c.CartHandler.Products)
		shop.GET("/cart", c.CartHandler.Get)
		shop.POST("/cart/items", c.CartHandler.Add)
		shop.PUT("/cart/items/:productId", c.CartHandler.SetQuantity)
		shop.DELETE("/cart/items/:productId", c.CartHandler.Remove)
		shop.DELETE("/cart", c.CartHandler.Clear)
	}
}

// ════════════════════════════════════════════════════════════════
// AUTH ROUTES
// ════════════════════════════════════════════════════════════════

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.ProfileHandler.Register)
		auth.POST("/login", c.ProfileHandler.Login)
		auth.POST("/logout", c.ProfileHandler.Logout)
		auth.POST("/refresh", c.ProfileHandler.Refresh)

		// Session tolerates missing tokens: it answers "who am I" with
		// null instead of 401 so the public site can probe on page load.
		auth.GET("/session", middleware.OptionalAuthMiddleware(c.JWTManager), c.ProfileHandler.Session)

		auth.PUT("/profile", middleware.AuthMiddleware(c.JWTManager), c.ProfileHandler.UpdateProfile)
		auth.POST("/change-password", middleware.AuthMiddleware(c.JWTManager), c.ProfileHandler.ChangePassword)
	}
}

// ════════════════════════════════════════════════════════════════
// ADMIN ROUTES - authenticated admins only
// ════════════════════════════════════════════════════════════════

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin",
		middleware.AuthMiddleware(c.JWTManager),
		middleware.AdminMiddleware(),
	)

	artists := admin.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.List)
		artists.GET("/options", c.ArtistHandler.Options)
		artists.POST("", c.ArtistHandler.Create)
		artists.POST("/import", c.ArtistHandler.Import)
		artists.GET("/:id", c.ArtistHandler.GetByID)
		artists.PUT("/:id", c.ArtistHandler.Update)
		artists.PUT("/:id/stats", c.ArtistHandler.UpdateStats)
		artists.DELETE("/:id", c.ArtistHandler.Delete)
	}

	albums := admin.Group("/albums")
	{
		albums.GET("", c.AlbumHandler.List)
		albums.GET("/options", c.AlbumHandler.Options)
		albums.POST("", c.AlbumHandler.Create)
		albums.GET("/:id", c.AlbumHandler.GetByID)
		albums.PUT("/:id", c.AlbumHandler.Update)
		albums.DELETE("/:id", c.AlbumHandler.Delete)
	}

	tracks := admin.Group("/tracks")
	{
		tracks.GET("", c.TrackHandler.List)
		tracks.POST("", c.TrackHandler.Create)
		tracks.GET("/:id", c.TrackHandler.GetByID)
		tracks.PUT("/:id", c.TrackHandler.Update)
		tracks.DELETE("/:id", c.TrackHandler.Delete)
	}

	events := admin.Group("/events")
	{
		events.GET("", c.EventHandler.List)
		events.POST("", c.EventHandler.Create)
		events.GET("/:id", c.EventHandler.GetByID)
		events.PUT("/:id", c.EventHandler.Update)
		events.DELETE("/:id", c.EventHandler.Delete)
	}

	liveSets := admin.Group("/live-sets")
	{
		liveSets.GET("", c.LiveSetHandler.List)
		liveSets.POST("", c.LiveSetHandler.Create)
		liveSets.GET("/:id", c.LiveSetHandler.GetByID)
		liveSets.PUT("/:id", c.LiveSetHandler.Update)
		liveSets.DELETE("/:id", c.LiveSetHandler.Delete)
	}

	profiles := admin.Group("/profiles")
	{
		profiles.GET("", c.ProfileHandler.List)
		profiles.PUT("/:id/role", c.ProfileHandler.UpdateRole)
	}

	uploads := admin.Group("/uploads")
	{
		uploads.POST("/images", c.UploadHandler.Image)
		uploads.POST("/audio", c.UploadHandler.Audio)
	}
}

// healthCheckHandler reports the API plus its two stateful dependencies.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "ok"
		if err := c.Cache.Ping(checkCtx); err != nil {
			redisStatus = "down"
			status = http.StatusServiceUnavailable
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "degraded"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"redis":    redisStatus,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	}
}
