package repository

import (
	"context"
	"errors"
	"fmt"

	"secure_vault/internal/model"

	"github.com/jackc/pgx/v5"
)

// FileRepository defines operations for uploaded file metadata
type FileRepository interface {
	Create(ctx context.Context, file *model.StoredFile) error
	FindByUser(ctx context.Context, userID string) ([]model.StoredFile, error)
	FindByIDAndUser(ctx context.Context, id, userID string) (*model.StoredFile, error)
	Delete(ctx context.Context, id string) error
}

type fileRepository struct {
	db DB
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(db DB) FileRepository {
	return &fileRepository{db: db}
}

// Create inserts a new file metadata row
func (r *fileRepository) Create(ctx context.Context, f *model.StoredFile) error {
	sql := `INSERT INTO files (id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, sql, f.ID, f.UserID, f.FileName, f.OriginalName,
		f.FileType, f.FileSize, f.FileURL, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create file record: %w", err)
	}
	return nil
}

// FindByUser retrieves all files owned by a user, newest first
func (r *fileRepository) FindByUser(ctx context.Context, userID string) ([]model.StoredFile, error) {
	sql := `SELECT id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at
            FROM files WHERE user_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query files by user: %w", err)
	}
	defer rows.Close()

	var files []model.StoredFile
	for rows.Next() {
		var f model.StoredFile
		if err := rows.Scan(&f.ID, &f.UserID, &f.FileName, &f.OriginalName,
			&f.FileType, &f.FileSize, &f.FileURL, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		files = append(files, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file rows: %w", err)
	}
	return files, nil
}

// FindByIDAndUser retrieves a file only if it belongs to the given user
func (r *fileRepository) FindByIDAndUser(ctx context.Context, id, userID string) (*model.StoredFile, error) {
	f := &model.StoredFile{}
	sql := `SELECT id, user_id, file_name, original_name, file_type, file_size, file_url, uploaded_at
            FROM files WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(ctx, sql, id, userID).Scan(&f.ID, &f.UserID, &f.FileName,
		&f.OriginalName, &f.FileType, &f.FileSize, &f.FileURL, &f.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find file: %w", err)
	}
	return f, nil
}

// Delete removes a file metadata row
func (r *fileRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM files WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("file not found for deletion")
	}
	return nil
}
