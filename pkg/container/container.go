package container

import (
	"context"
	"fmt"
	"time"

	"blog-backend/internal/config"
	"blog-backend/internal/domains/comment"
	commenthandler "blog-backend/internal/domains/comment/handler"
	commentrepo "blog-backend/internal/domains/comment/repository"
	commentservice "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/post"
	posthandler "blog-backend/internal/domains/post/handler"
	postrepo "blog-backend/internal/domains/post/repository"
	postservice "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/tag"
	tagrepo "blog-backend/internal/domains/tag/repository"
	"blog-backend/internal/domains/user"
	userhandler "blog-backend/internal/domains/user/handler"
	userrepo "blog-backend/internal/domains/user/repository"
	userservice "blog-backend/internal/domains/user/service"
	rediscache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/token"
)

// Container wires every layer together: infrastructure, repositories,
// services, handlers. Built once at startup and torn down by Cleanup.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB     *database.PostgresDB
	Cache  *rediscache.RedisCache
	Tokens *token.Manager

	// Repositories
	UserRepo    user.Repository
	PostRepo    post.Repository
	CommentRepo comment.Repository
	TagRepo     tag.Repository

	// Services
	UserService    user.Service
	PostService    post.Service
	CommentService comment.Service

	// Handlers
	UserHandler    *userhandler.UserHandler
	PostHandler    *posthandler.PostHandler
	CommentHandler *commenthandler.CommentHandler
}

// NewContainer builds the dependency graph bottom-up:
// config -> db (+migrations) -> redis -> token manager -> repos -> services -> handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// 1. DATABASE
	c.DB = database.NewPostgresDB(cfg.DBConfig())
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := c.DB.Migrate(); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	// 2. REDIS
	c.Cache = rediscache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		c.DB.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	// 3. TOKEN MANAGER
	c.Tokens = token.NewManager(cfg.JWT.Secret, cfg.JWT.Algorithm)

	// 4. REPOSITORIES
	c.UserRepo = userrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.PostRepo = postrepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CommentRepo = commentrepo.NewPostgresRepository(c.DB.Pool)
	c.TagRepo = tagrepo.NewPostgresRepository(c.DB.Pool)

	// 5. SERVICES
	tokenExpiry := time.Duration(cfg.JWT.ExpireMinutes) * time.Minute
	c.UserService = userservice.NewUserService(c.UserRepo, c.Tokens, tokenExpiry)
	c.PostService = postservice.NewPostService(c.PostRepo, c.TagRepo)
	c.CommentService = commentservice.NewCommentService(c.CommentRepo, c.PostRepo)

	// 6. HANDLERS
	c.UserHandler = userhandler.NewUserHandler(c.UserService)
	c.PostHandler = posthandler.NewPostHandler(c.PostService)
	c.CommentHandler = commenthandler.NewCommentHandler(c.CommentService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleaned up", nil)
}
