package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/config"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/delivery/http/controllers"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

func InitRoutes(l logger.Log, cfg *config.Config, u service.Collection) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	healthController := controllers.NewHealthHandler()
	userController := controllers.NewUserHandler(l, u.Auth, u.Subscriptions)
	videoController := controllers.NewVideoHandler(l, u.Videos)
	commentController := controllers.NewCommentHandler(l, u.Comments)
	likeController := controllers.NewLikeHandler(l, u.Likes)
	tweetController := controllers.NewTweetHandler(l, u.Tweets)
	playlistController := controllers.NewPlaylistHandler(l, u.Playlists)
	subscriptionController := controllers.NewSubscriptionHandler(l, u.Subscriptions)
	dashboardController := controllers.NewDashboardHandler(l, u.Dashboard)

	v1 := r.Group("/api/v1", controllers.LoggingMiddleware(l))
	{
		v1.GET("/healthcheck", healthController.Healthcheck)

		users := v1.Group("/users")
		{
			users.POST("/register", userController.Register)
			users.POST("/login", userController.Login)
			users.POST("/refresh-token", userController.RefreshAccessToken)

			secured := users.Group("", userController.AuthMiddleware)
			{
				secured.POST("/logout", userController.Logout)
				secured.POST("/change-password", userController.ChangePassword)
				secured.GET("/current-user", userController.Me)
				secured.PATCH("/update-account", userController.UpdateAccount)
				secured.PATCH("/avatar", userController.UpdateAvatar)
				secured.PATCH("/cover-image", userController.UpdateCoverImage)
				secured.GET("/c/:username", userController.Channel)
				secured.GET("/history", videoController.WatchHistory)
			}
		}

		videos := v1.Group("/videos", userController.AuthMiddleware)
		{
			videos.GET("", videoController.List)
			videos.POST("", videoController.Publish)
			videos.GET("/:videoId", videoController.VideoByID)
			videos.PATCH("/:videoId", videoController.Update)
			videos.DELETE("/:videoId", videoController.Delete)
			videos.PATCH("/toggle/publish/:videoId", videoController.TogglePublish)
		}

		comments := v1.Group("/comments", userController.AuthMiddleware)
		{
			comments.GET("/:videoId", commentController.VideoComments)
			comments.POST("/:videoId", commentController.Add)
			comments.PATCH("/c/:commentId", commentController.Update)
			comments.DELETE("/c/:commentId", commentController.Delete)
		}

		likes := v1.Group("/likes", userController.AuthMiddleware)
		{
			likes.POST("/toggle/v/:videoId", likeController.ToggleVideoLike)
			likes.POST("/toggle/c/:commentId", likeController.ToggleCommentLike)
			likes.POST("/toggle/t/:tweetId", likeController.ToggleTweetLike)
			likes.GET("/videos", likeController.LikedVideos)
		}

		tweets := v1.Group("/tweets", userController.AuthMiddleware)
		{
			tweets.POST("", tweetController.Create)
			tweets.GET("/user/:userId", tweetController.UserTweets)
			tweets.PATCH("/:tweetId", tweetController.Update)
			tweets.DELETE("/:tweetId", tweetController.Delete)
		}

		playlists := v1.Group("/playlists", userController.AuthMiddleware)
		{
			playlists.POST("", playlistController.Create)
			playlists.GET("/:playlistId", playlistController.PlaylistByID)
			playlists.PATCH("/:playlistId", playlistController.Update)
			playlists.DELETE("/:playlistId", playlistController.Delete)
			playlists.PATCH("/add/:videoId/:playlistId", playlistController.AddVideo)
			playlists.PATCH("/remove/:videoId/:playlistId", playlistController.RemoveVideo)
			playlists.GET("/user/:userId", playlistController.UserPlaylists)
		}

		subscriptions := v1.Group("/subscriptions", userController.AuthMiddleware)
		{
			subscriptions.POST("/c/:channelId", subscriptionController.Toggle)
			subscriptions.GET("/c/:channelId", subscriptionController.Subscribers)
			subscriptions.GET("/u/:subscriberId", subscriptionController.SubscribedChannels)
		}

		dashboard := v1.Group("/dashboard", userController.AuthMiddleware)
		{
			dashboard.GET("/stats", dashboardController.Stats)
			dashboard.GET("/videos", dashboardController.Videos)
		}
	}

	return r
}
