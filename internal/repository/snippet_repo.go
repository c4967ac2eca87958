package repository

import (
	"context"
	"errors"
	"fmt"

	"secure_vault/internal/model"

	"github.com/jackc/pgx/v5"
)

// SnippetRepository defines operations for notes and saved texts. Both use
// the same row shape; the constructor binds the implementation to a table.
type SnippetRepository interface {
	Create(ctx context.Context, snippet *model.Snippet) error
	FindByUser(ctx context.Context, userID string) ([]model.Snippet, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.Snippet, error)
	Delete(ctx context.Context, id string) error
}

type snippetRepository struct {
	db    DB
	table string
}

// NewNoteRepository creates a SnippetRepository backed by the notes table
func NewNoteRepository(db DB) SnippetRepository {
	return &snippetRepository{db: db, table: "notes"}
}

// NewTextRepository creates a SnippetRepository backed by the texts table
func NewTextRepository(db DB) SnippetRepository {
	return &snippetRepository{db: db, table: "texts"}
}

// Create inserts a new snippet row
func (r *snippetRepository) Create(ctx context.Context, s *model.Snippet) error {
	sql := fmt.Sprintf(`INSERT INTO %s (id, user_id, title, content, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6)`, r.table)
	_, err := r.db.Exec(ctx, sql, s.ID, s.UserID, s.Title, s.Content, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create %s row: %w", r.table, err)
	}
	return nil
}

// FindByUser retrieves all snippets owned by a user, newest first
func (r *snippetRepository) FindByUser(ctx context.Context, userID string) ([]model.Snippet, error) {
	sql := fmt.Sprintf(`SELECT id, user_id, title, content, created_at, updated_at
            FROM %s WHERE user_id = $1 ORDER BY created_at DESC`, r.table)
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s by user: %w", r.table, err)
	}
	defer rows.Close()

	var snippets []model.Snippet
	for rows.Next() {
		var s model.Snippet
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		snippets = append(snippets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}
	return snippets, nil
}

// FindByIDAndUser retrieves a snippet only if it belongs to the given user
func (r *snippetRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.Snippet, error) {
	s := &model.Snippet{}
	sql := fmt.Sprintf(`SELECT id, user_id, title, content, created_at, updated_at
            FROM %s WHERE id = $1 AND user_id = $2`, r.table)
	err := r.db.QueryRow(ctx, sql, id, userID).Scan(&s.ID, &s.UserID, &s.Title, &s.Content, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find %s row: %w", r.table, err)
	}
	return s, nil
}

// Delete removes a snippet row
func (r *snippetRepository) Delete(ctx context.Context, id string) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table)
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s row: %w", r.table, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s row not found for deletion", r.table)
	}
	return nil
}
