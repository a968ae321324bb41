package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jiwonnow/jiwonnow/internal/models"
)

// BookmarkStore keys bookmarks by (user, project). Creation stores a frozen
// project snapshot; deletion is a hard delete.
type BookmarkStore struct {
	db *pgxpool.Pool
}

func NewBookmarkStore(db *pgxpool.Pool) *BookmarkStore {
	return &BookmarkStore{db: db}
}

func (s *BookmarkStore) Exists(ctx context.Context, userID uuid.UUID, projectID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND project_id = $2)",
		userID, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking bookmark: %w", err)
	}
	return exists, nil
}

func (s *BookmarkStore) Set(ctx context.Context, userID uuid.UUID, projectID string, snapshot models.BookmarkSnapshot) error {
	doc, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("encoding bookmark snapshot: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO bookmarks (user_id, project_id, snapshot)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, project_id) DO NOTHING
	`, userID, projectID, doc)
	if err != nil {
		return fmt.Errorf("saving bookmark: %w", err)
	}
	return nil
}

func (s *BookmarkStore) Delete(ctx context.Context, userID uuid.UUID, projectID string) error {
	_, err := s.db.Exec(ctx,
		"DELETE FROM bookmarks WHERE user_id = $1 AND project_id = $2",
		userID, projectID)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	return nil
}

// bookmarkOps is the row-level surface the toggle decision runs against.
type bookmarkOps interface {
	Exists(ctx context.Context, userID uuid.UUID, projectID string) (bool, error)
	Set(ctx context.Context, userID uuid.UUID, projectID string, snapshot models.BookmarkSnapshot) error
	Delete(ctx context.Context, userID uuid.UUID, projectID string) error
}

// Toggle creates the bookmark if absent and deletes it if present,
// reporting the resulting bookmarked state.
func (s *BookmarkStore) Toggle(ctx context.Context, userID uuid.UUID, project models.Project) (bool, error) {
	return toggleBookmark(ctx, s, userID, project)
}

func toggleBookmark(ctx context.Context, ops bookmarkOps, userID uuid.UUID, project models.Project) (bool, error) {
	exists, err := ops.Exists(ctx, userID, project.ID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := ops.Delete(ctx, userID, project.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := ops.Set(ctx, userID, project.ID, models.SnapshotOf(project)); err != nil {
		return false, err
	}
	return true, nil
}

// ListByUser returns the user's bookmarks, newest first.
func (s *BookmarkStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Bookmark, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, project_id, snapshot, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []models.Bookmark
	for rows.Next() {
		var b models.Bookmark
		var doc []byte
		if err := rows.Scan(&b.UserID, &b.ProjectID, &doc, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		if err := json.Unmarshal(doc, &b.Snapshot); err != nil {
			return nil, fmt.Errorf("decoding bookmark snapshot: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}
