package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionPostgres struct {
	db *pgxpool.Pool
}

func NewSubscriptionPostgres(db *pgxpool.Pool) *SubscriptionPostgres {
	return &SubscriptionPostgres{db: db}
}

// Find returns nil without error when no subscription exists.
func (r *SubscriptionPostgres) Find(ctx context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error) {
	query := `
		SELECT id, subscriber, channel, created_at
		FROM subscriptions
		WHERE subscriber = $1 AND channel = $2
	`
	var sub models.Subscription
	err := r.db.QueryRow(ctx, query, subscriber, channel).Scan(
		&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubscriptionPostgres) Create(ctx context.Context, subscriber, channel uuid.UUID) (*models.Subscription, error) {
	query := `
		INSERT INTO subscriptions (subscriber, channel)
		VALUES ($1, $2)
		RETURNING id, subscriber, channel, created_at
	`
	var sub models.Subscription
	err := r.db.QueryRow(ctx, query, subscriber, channel).Scan(
		&sub.ID, &sub.Subscriber, &sub.Channel, &sub.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}
	return &sub, nil
}

func (r *SubscriptionPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	return err
}

func (r *SubscriptionPostgres) Subscribers(ctx context.Context, channel uuid.UUID) ([]models.PublicUser, error) {
	query := `
		SELECT u.id, u.username, u.email, u.full_name, u.avatar, u.cover_image, u.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber
		WHERE s.channel = $1
		ORDER BY s.created_at DESC
	`
	return r.collectUsers(ctx, query, channel)
}

func (r *SubscriptionPostgres) SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]models.PublicUser, error) {
	query := `
		SELECT u.id, u.username, u.email, u.full_name, u.avatar, u.cover_image, u.created_at
		FROM subscriptions s
		JOIN users u ON u.id = s.channel
		WHERE s.subscriber = $1
		ORDER BY s.created_at DESC
	`
	return r.collectUsers(ctx, query, subscriber)
}

func (r *SubscriptionPostgres) Counts(ctx context.Context, userID uuid.UUID) (subscribers, subscribedTo int, err error) {
	query := `
		SELECT
			(SELECT count(*) FROM subscriptions WHERE channel = $1),
			(SELECT count(*) FROM subscriptions WHERE subscriber = $1)
	`
	err = r.db.QueryRow(ctx, query, userID).Scan(&subscribers, &subscribedTo)
	return subscribers, subscribedTo, err
}

func (r *SubscriptionPostgres) collectUsers(ctx context.Context, query string, arg interface{}) ([]models.PublicUser, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.PublicUser{}
	for rows.Next() {
		var u models.PublicUser
		err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Avatar, &u.CoverImage, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
