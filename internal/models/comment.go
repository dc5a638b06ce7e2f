package models

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id"`
	VideoID   uuid.UUID `json:"videoId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentWithOwner struct {
	Comment
	OwnerUsername string `json:"ownerUsername"`
	OwnerFullName string `json:"ownerFullName"`
	OwnerAvatar   string `json:"ownerAvatar"`
}
