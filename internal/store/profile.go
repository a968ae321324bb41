package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// ErrProfileNotFound marks the absent-profile case, which callers treat as
// a prompt to fill the profile form, not as a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore keeps one profile document per user, overwritten wholesale
// on every save.
type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Get(ctx context.Context, userID uuid.UUID) (models.UserProfile, error) {
	var doc []byte
	var updatedAt time.Time
	err := s.db.QueryRow(ctx,
		"SELECT profile, updated_at FROM user_profiles WHERE user_id = $1",
		userID).Scan(&doc, &updatedAt)
	if err == pgx.ErrNoRows {
		return models.UserProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decoding profile document: %w", err)
	}
	profile.UpdatedAt = updatedAt
	return profile, nil
}

// Set replaces the user's profile document. There is no partial update.
func (s *ProfileStore) Set(ctx context.Context, userID uuid.UUID, profile models.UserProfile) error {
	profile.UpdatedAt = time.Time{}
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile document: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO user_profiles (user_id, profile, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			profile = EXCLUDED.profile,
			updated_at = NOW()
	`, userID, doc)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
