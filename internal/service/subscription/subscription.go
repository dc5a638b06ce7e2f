package subscription

import (
	"context"
	"errors"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type SubscriptionRepo interface {
	Find(ctx context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error)
	Create(ctx context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Subscribers(ctx context.Context, channel uuid.UUID) ([]models.PublicUser, error)
	SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]models.PublicUser, error)
	Counts(ctx context.Context, userID uuid.UUID) (subscribers, subscribedTo int, err error)
}

type userRepo interface {
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

type SubscriptionService struct {
	log   logger.Log
	repo  SubscriptionRepo
	users userRepo
}

func NewSubscriptionService(l logger.Log, repo SubscriptionRepo, users userRepo) *SubscriptionService {
	return &SubscriptionService{
		log:   l,
		repo:  repo,
		users: users,
	}
}

// Toggle subscribes or unsubscribes. Returns true when the subscriber ends
// up subscribed to the channel.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriber, channel uuid.UUID) (bool, error) {
	if subscriber == channel {
		return false, app_errors.ErrSelfSubscription
	}

	existing, err := s.repo.Find(ctx, subscriber, channel)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := s.repo.Create(ctx, subscriber, channel); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SubscriptionService) Subscribers(ctx context.Context, channel uuid.UUID) ([]models.PublicUser, error) {
	return s.repo.Subscribers(ctx, channel)
}

func (s *SubscriptionService) SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]models.PublicUser, error) {
	return s.repo.SubscribedChannels(ctx, subscriber)
}

// ChannelProfile resolves a username into the channel view: public fields
// plus subscription counters relative to the viewer.
func (s *SubscriptionService) ChannelProfile(ctx context.Context, viewerID uuid.UUID, username string) (*models.ChannelProfile, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrChannelNotFound
		}
		return nil, err
	}

	subscribers, subscribedTo, err := s.repo.Counts(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	viewerSub, err := s.repo.Find(ctx, viewerID, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.ChannelProfile{
		PublicUser:        user.Public(),
		SubscriberCount:   subscribers,
		SubscribedToCount: subscribedTo,
		IsSubscribed:      viewerSub != nil,
	}, nil
}
