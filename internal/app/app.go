package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app/server"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/config"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/delivery/http"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/auth"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/comment"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/dashboard"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/like"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/playlist"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/subscription"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/tweet"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/video"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/storage/elastic"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/storage/minio_storage"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/storage/postgres"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

const tokenIssuer = "vision-stream"

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	pg, err := postgres.NewPostgresPool(cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)
	if err != nil {
		log.FatalErr("error connecting to database", err)
	}
	defer pg.Close()

	minioStorage, err := minio_storage.NewMinioStorage(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL, cfg.Minio.Buckets)
	if err != nil {
		log.FatalErr("error connecting to minio", err)
	}

	imagesBucket := mustBucket(log, cfg, "images")
	videosBucket := mustBucket(log, cfg, "videos")
	thumbnailsBucket := mustBucket(log, cfg, "thumbnails")

	userImages, err := minio_storage.NewUserImageStorage(minioStorage, imagesBucket.Name, imagesBucket.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing user image storage", err)
	}
	videoMedia, err := minio_storage.NewVideoMediaStorage(minioStorage, videosBucket.Name, thumbnailsBucket.Name, videosBucket.PresignTTL)
	if err != nil {
		log.FatalErr("error preparing video media storage", err)
	}

	esClient, err := elastic.NewElasticClient(cfg.ES.Password, cfg.ES.Hosts)
	if err != nil {
		log.FatalErr("error connecting to elasticsearch", err)
	}
	videoSearch := elastic.NewVideoSearchRepository(esClient, cfg.ES.Index)
	if err := videoSearch.CreateIndexIfNotExist(context.Background()); err != nil {
		log.FatalErr("error creating search index", err)
	}

	userRepo := postgres.NewUserPostgres(pg.Pool)
	videoRepo := postgres.NewVideoPostgres(pg.Pool)
	commentRepo := postgres.NewCommentPostgres(pg.Pool)
	likeRepo := postgres.NewLikePostgres(pg.Pool)
	tweetRepo := postgres.NewTweetPostgres(pg.Pool)
	playlistRepo := postgres.NewPlaylistPostgres(pg.Pool)
	subscriptionRepo := postgres.NewSubscriptionPostgres(pg.Pool)
	dashboardRepo := postgres.NewDashboardPostgres(pg.Pool)

	jwtManager := auth.NewJWTManager(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, tokenIssuer, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	u := service.Collection{
		Auth:          auth.NewAuthService(log, jwtManager, userRepo, userImages),
		Videos:        video.NewVideoService(log, videoRepo, videoSearch, videoMedia),
		Comments:      comment.NewCommentService(log, commentRepo, videoRepo),
		Likes:         like.NewLikeService(log, likeRepo, videoMedia),
		Tweets:        tweet.NewTweetService(log, tweetRepo),
		Playlists:     playlist.NewPlaylistService(log, playlistRepo, videoRepo),
		Subscriptions: subscription.NewSubscriptionService(log, subscriptionRepo, userRepo),
		Dashboard:     dashboard.NewDashboardService(log, dashboardRepo, videoRepo, videoMedia),
	}

	r := http.InitRoutes(log, cfg, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("HTTP server started", "address", cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("http server stopped", err)
	}

	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("error during shutdown", err)
	}
}

func mustBucket(log logger.Log, cfg *config.Config, key string) config.BucketConfig {
	bucket, ok := cfg.Minio.Buckets[key]
	if !ok || bucket.Name == "" {
		log.Fatal("minio bucket is not configured", "bucket", key)
	}
	return bucket
}
