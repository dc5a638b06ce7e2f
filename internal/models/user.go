package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record. RefreshToken holds the single live refresh
// token for the user; empty means logged out. Avatar and CoverImage are
// object keys in the images bucket, presigned into URLs at the edge.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	FullName     string
	Password     string
	Avatar       string
	CoverImage   string
	RefreshToken string
	CreatedAt    time.Time
}

// PublicUser is the user shape safe to return to clients: no password hash,
// no refresh token.
type PublicUser struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
	}
}

// ChannelProfile is a user seen as a channel, with subscription counters
// relative to the viewing user.
type ChannelProfile struct {
	PublicUser
	SubscriberCount   int  `json:"subscriberCount"`
	SubscribedToCount int  `json:"subscribedToCount"`
	IsSubscribed      bool `json:"isSubscribed"`
}
