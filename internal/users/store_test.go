package users

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a real Postgres; skipped unless DATABASE_URL is set.
func TestStoreGetProfile(t *testing.T) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping profile store test")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS profiles (
		id uuid PRIMARY KEY,
		username text,
		full_name text,
		favorite_team text,
		subscription_status text,
		updated_at timestamptz
	)`)
	require.NoError(t, err)

	store := NewStore(pool)

	t.Run("missing", func(t *testing.T) {
		_, err := store.GetProfile(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("nullable columns", func(t *testing.T) {
		id := uuid.New()
		_, err := pool.Exec(ctx, `INSERT INTO profiles (id, username) VALUES ($1, 'splash')`, id)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, _ = pool.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, id)
		})

		p, err := store.GetProfile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, "splash", p.Username)
		assert.Equal(t, "free", p.SubscriptionStatus)
		assert.Nil(t, p.UpdatedAt)
	})
}
