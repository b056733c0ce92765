// Package users reads app profiles from the Supabase Postgres database.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("profile not found")

// Profile is the app-side row keyed by the Supabase auth user id.
type Profile struct {
	ID                 uuid.UUID  `json:"id"`
	Username           string     `json:"username,omitempty"`
	FullName           string     `json:"full_name,omitempty"`
	FavoriteTeam       string     `json:"favorite_team,omitempty"`
	SubscriptionStatus string     `json:"subscription_status"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

const getProfile = `
SELECT id, username, full_name, favorite_team, subscription_status, updated_at
FROM profiles
WHERE id = $1`

func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error) {
	var (
		p            Profile
		username     pgtype.Text
		fullName     pgtype.Text
		favoriteTeam pgtype.Text
		subStatus    pgtype.Text
		updatedAt    pgtype.Timestamptz
	)
	err := s.pool.QueryRow(ctx, getProfile, id).Scan(&p.ID, &username, &fullName, &favoriteTeam, &subStatus, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	p.Username = username.String
	p.FullName = fullName.String
	p.FavoriteTeam = favoriteTeam.String
	p.SubscriptionStatus = "free"
	if subStatus.Valid && subStatus.String != "" {
		p.SubscriptionStatus = subStatus.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}
