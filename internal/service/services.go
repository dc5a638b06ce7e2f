package service

import (
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/auth"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/comment"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/dashboard"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/like"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/playlist"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/subscription"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/tweet"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/service/video"
)

type Collection struct {
	Auth          *auth.AuthService
	Videos        *video.VideoService
	Comments      *comment.CommentService
	Likes         *like.LikeService
	Tweets        *tweet.TweetService
	Playlists     *playlist.PlaylistService
	Subscriptions *subscription.SubscriptionService
	Dashboard     *dashboard.DashboardService
}
