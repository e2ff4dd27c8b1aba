// Command seed populates the database with baseline tags and a demo
// user/post set for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"blog-backend/internal/config"
	"blog-backend/internal/domains/comment"
	commentrepo "blog-backend/internal/domains/comment/repository"
	commentservice "blog-backend/internal/domains/comment/service"
	"blog-backend/internal/domains/post"
	postrepo "blog-backend/internal/domains/post/repository"
	postservice "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/tag"
	tagrepo "blog-backend/internal/domains/tag/repository"
	"blog-backend/internal/domains/user"
	userrepo "blog-backend/internal/domains/user/repository"
	userservice "blog-backend/internal/domains/user/service"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
	"blog-backend/pkg/token"
)

var baselineTags = []string{"go", "postgres", "redis", "web", "tutorial"}

func main() {
	withDemo := flag.Bool("demo", true, "Create a demo user, post and comment")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	logger.Init("development")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db := database.NewPostgresDB(cfg.DBConfig())
	if err := db.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// No Redis here: seeding goes straight to the database.
	tags := tagrepo.NewPostgresRepository(db.Pool)
	users := userrepo.NewPostgresRepository(db.Pool, cache.NoopCache{})
	posts := postrepo.NewPostgresRepository(db.Pool, cache.NoopCache{})
	comments := commentrepo.NewPostgresRepository(db.Pool)

	tagIDs, err := seedTags(ctx, tags)
	if err != nil {
		log.Fatalf("Tag seeding failed: %v", err)
	}
	log.Printf("Baseline tags ready: %v", baselineTags)

	if !*withDemo {
		log.Println("Done.")
		return
	}

	if err := seedDemoContent(ctx, cfg, users, posts, comments, tags, tagIDs); err != nil {
		log.Fatalf("Demo seeding failed: %v", err)
	}

	log.Println("Done. Demo user: demo / password123")
}

// seedTags creates the baseline tags, tolerating reruns: a tag that
// already exists is looked up instead of recreated.
func seedTags(ctx context.Context, tags tag.Repository) ([]int64, error) {
	existing, err := tags.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]int64, len(existing))
	for _, t := range existing {
		byName[t.Name] = t.ID
	}

	ids := make([]int64, 0, len(baselineTags))
	for _, name := range baselineTags {
		if id, ok := byName[name]; ok {
			ids = append(ids, id)
			continue
		}

		t, err := tags.Create(ctx, name)
		if err != nil {
			if errors.Is(err, tag.ErrNameTaken) {
				continue
			}
			return nil, err
		}
		ids = append(ids, t.ID)
	}

	return ids, nil
}

func seedDemoContent(
	ctx context.Context,
	cfg *config.Config,
	users user.Repository,
	posts post.Repository,
	comments comment.Repository,
	tags tag.Repository,
	tagIDs []int64,
) error {
	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.Algorithm)
	userSvc := userservice.NewUserService(users, tokens, 0)
	postSvc := postservice.NewPostService(posts, tags)
	commentSvc := commentservice.NewCommentService(comments, posts)

	demo, err := userSvc.Register(ctx, user.RegisterRequest{
		Email:    "demo@example.com",
		Username: "demo",
		Password: "password123",
		FullName: "Demo Author",
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) || errors.Is(err, user.ErrUsernameTaken) {
			log.Println("Demo user already exists, skipping demo content")
			return nil
		}
		return err
	}

	firstTags := tagIDs
	if len(firstTags) > 2 {
		firstTags = firstTags[:2]
	}

	p, err := postSvc.Create(ctx, demo.ID, post.CreatePostRequest{
		Title:   "Hello, world",
		Content: "First post, seeded for local development.",
		TagIDs:  firstTags,
	})
	if err != nil {
		return err
	}

	_, err = commentSvc.Create(ctx, demo.ID, comment.CreateCommentRequest{
		Content: "Commenting on my own post to have some data here.",
		PostID:  p.ID,
	})
	return err
}
