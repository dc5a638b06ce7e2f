package subscription

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type fakeSubRepo struct {
	subs map[uuid.UUID]models.Subscription
}

func newFakeSubRepo() *fakeSubRepo {
	return &fakeSubRepo{subs: map[uuid.UUID]models.Subscription{}}
}

func (r *fakeSubRepo) Find(_ context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error) {
	for _, sub := range r.subs {
		if sub.Subscriber == subscriber && sub.Channel == channel {
			copied := sub
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeSubRepo) Create(_ context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error) {
	sub := models.Subscription{ID: uuid.New(), Subscriber: subscriber, Channel: channel}
	r.subs[sub.ID] = sub
	return &sub, nil
}

func (r *fakeSubRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.subs, id)
	return nil
}

func (r *fakeSubRepo) Subscribers(_ context.Context, _ uuid.UUID) ([]models.PublicUser, error) {
	return nil, nil
}

func (r *fakeSubRepo) SubscribedChannels(_ context.Context, _ uuid.UUID) ([]models.PublicUser, error) {
	return nil, nil
}

func (r *fakeSubRepo) Counts(_ context.Context, userID uuid.UUID) (int, int, error) {
	subscribers, subscribedTo := 0, 0
	for _, sub := range r.subs {
		if sub.Channel == userID {
			subscribers++
		}
		if sub.Subscriber == userID {
			subscribedTo++
		}
	}
	return subscribers, subscribedTo, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) UserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func newTestService() (*SubscriptionService, *fakeSubRepo, *fakeUserRepo) {
	repo := newFakeSubRepo()
	users := &fakeUserRepo{users: map[string]*models.User{}}
	svc := NewSubscriptionService(logger.New("local"), repo, users)
	return svc, repo, users
}

func TestToggle_SubscribeThenUnsubscribe(t *testing.T) {
	svc, repo, _ := newTestService()
	subscriber := uuid.New()
	channel := uuid.New()

	subscribed, err := svc.Toggle(context.Background(), subscriber, channel)
	require.NoError(t, err)
	require.True(t, subscribed)
	require.Len(t, repo.subs, 1)

	subscribed, err = svc.Toggle(context.Background(), subscriber, channel)
	require.NoError(t, err)
	require.False(t, subscribed)
	require.Empty(t, repo.subs)
}

func TestToggle_SelfSubscriptionRejected(t *testing.T) {
	svc, _, _ := newTestService()
	userID := uuid.New()

	_, err := svc.Toggle(context.Background(), userID, userID)
	require.ErrorIs(t, err, app_errors.ErrSelfSubscription)
}

func TestChannelProfile_CountsAndViewerFlag(t *testing.T) {
	svc, _, users := newTestService()
	channelUser := &models.User{ID: uuid.New(), Username: "creator"}
	users.users["creator"] = channelUser

	viewer := uuid.New()
	other := uuid.New()

	_, err := svc.Toggle(context.Background(), viewer, channelUser.ID)
	require.NoError(t, err)
	_, err = svc.Toggle(context.Background(), other, channelUser.ID)
	require.NoError(t, err)

	profile, err := svc.ChannelProfile(context.Background(), viewer, "creator")
	require.NoError(t, err)
	require.Equal(t, 2, profile.SubscriberCount)
	require.True(t, profile.IsSubscribed)

	profile, err = svc.ChannelProfile(context.Background(), uuid.New(), "creator")
	require.NoError(t, err)
	require.False(t, profile.IsSubscribed)
}

func TestChannelProfile_UnknownUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.ChannelProfile(context.Background(), uuid.New(), "ghost")
	require.ErrorIs(t, err, app_errors.ErrChannelNotFound)
}
