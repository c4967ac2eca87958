package repository

import (
	"context"
	"errors"
	"fmt"

	"secure_vault/internal/model"

	"github.com/jackc/pgx/v5"
)

// StatsRepository computes per-user storage usage aggregates
type StatsRepository interface {
	GetStorageStats(ctx context.Context, userID string) (*model.StorageStats, error)
}

type statsRepository struct {
	db DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetStorageStats aggregates file counts/sizes and note/text counts for one user
func (r *statsRepository) GetStorageStats(ctx context.Context, userID string) (*model.StorageStats, error) {
	stats := &model.StorageStats{
		ByFileType: make(map[string]int64),
	}

	fileQuery := `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM files WHERE user_id = $1`
	err := r.db.QueryRow(ctx, fileQuery, userID).Scan(&stats.FileCount, &stats.TotalFileSize)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get file totals: %w", err)
	}

	byTypeQuery := `SELECT file_type, COALESCE(SUM(file_size), 0) FROM files WHERE user_id = $1 GROUP BY file_type`
	rows, err := r.db.Query(ctx, byTypeQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage by file type: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var fileType string
		var sum int64
		if err := rows.Scan(&fileType, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan usage by file type: %w", err)
		}
		stats.ByFileType[fileType] = sum
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usage by file type: %w", err)
	}

	noteQuery := `SELECT COUNT(*) FROM notes WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, noteQuery, userID).Scan(&stats.NoteCount); err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}
	textQuery := `SELECT COUNT(*) FROM texts WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, textQuery, userID).Scan(&stats.TextCount); err != nil {
		return nil, fmt.Errorf("failed to count texts: %w", err)
	}

	return stats, nil
}
