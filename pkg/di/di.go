package di

import (
	"context"
	"log"

	"gorm.io/gorm"

	"board-service/configs"
	"board-service/internal/comments"
	"board-service/internal/engagement"
	"board-service/internal/identity"
	"board-service/internal/moderation"
	"board-service/internal/notifications"
	"board-service/internal/posts"
	"board-service/pkg/db"
	"board-service/pkg/kafka"
	"board-service/pkg/redisx"
)

type Container struct {
	DB       *gorm.DB
	Producer *kafka.Producer
	Identity *identity.Provider

	PostService         posts.Service
	CommentService      comments.Service
	EngagementService   engagement.Service
	NotificationService notifications.Service
	ModerationClient    *moderation.Client
}

func BuildContainer(cfg *configs.Config) *Container {
	dbConn := db.NewDb(cfg)
	rdb := redisx.Open(cfg)
	producer := kafka.NewProducer(cfg.KafkaBrokerURL, cfg.KafkaTopic)
	ids := identity.NewProvider(cfg.IdentitySecret)

	postRepo := posts.NewRepository(dbConn.DB)
	postService := posts.NewService(postRepo, ids, cfg.CommunityScope, producer)

	commentRepo := comments.NewRepository(dbConn.DB)
	commentService := comments.NewService(commentRepo, postRepo, ids, cfg.CommunityScope)

	engagementStore := engagement.NewStore(dbConn.DB, postRepo)
	engagementService := engagement.NewService(engagementStore, ids, cfg.CommunityScope, producer)

	notifRepo := notifications.NewRedisRepository(rdb)
	notifService := notifications.NewService(notifRepo)

	objectStore, err := moderation.NewS3Store(context.Background(), moderation.S3Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
	})
	if err != nil {
		log.Fatalf("object store: %v", err)
	}

	return &Container{
		DB:                  dbConn.DB,
		Producer:            producer,
		Identity:            ids,
		PostService:         postService,
		CommentService:      commentService,
		EngagementService:   engagementService,
		NotificationService: notifService,
		ModerationClient:    moderation.NewClient(cfg.ModerationURL, objectStore),
	}
}
