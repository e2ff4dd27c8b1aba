package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
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

	// Root info endpoint
	router.GET("/", rootHandler(c))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupPostRoutes(v1, c)
		setupCommentRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.GET("/me", middleware.Auth(c.Tokens, c.UserRepo), c.UserHandler.GetMe)
		users.GET("/:id", c.UserHandler.GetByID)
	}
}

// ========================================
// POST ROUTES
// ========================================
func setupPostRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.Auth(c.Tokens, c.UserRepo)

	posts := v1.Group("/posts")
	{
		// Public reads
		posts.GET("", c.PostHandler.List)
		posts.GET("/:id", c.PostHandler.GetByID)

		// Author-scoped writes
		posts.POST("", requireAuth, c.PostHandler.Create)
		posts.PUT("/:id", requireAuth, c.PostHandler.Update)
		posts.DELETE("/:id", requireAuth, c.PostHandler.Delete)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(v1 *gin.RouterGroup, c *container.Container) {
	requireAuth := middleware.Auth(c.Tokens, c.UserRepo)

	comments := v1.Group("/comments")
	{
		// The target post is addressed in the body (create) or the
		// path (list), never via a nested /posts route.
		comments.POST("", requireAuth, c.CommentHandler.Create)
		comments.GET("/post/:post_id", c.CommentHandler.ListByPost)
		comments.DELETE("/:id", requireAuth, c.CommentHandler.Delete)
	}
}

// ========================================
// ROOT INFO HANDLER
// ========================================
func rootHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    appCtx.Config.App.Name,
			"version": appCtx.Config.App.Version,
			"docs":    "/api/v1",
		})
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis; a down cache degrades but never fails the service
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else if err := appCtx.Cache.Ping(c.Request.Context()); err != nil {
			redisStatus = fmt.Sprintf("error: %v", err)
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
