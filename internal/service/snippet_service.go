package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secure_vault/internal/model"
	"secure_vault/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNoteNotFound = errors.New("Note not found")
	ErrTextNotFound = errors.New("Text not found")
)

// SnippetService defines operations for notes and saved texts
type SnippetService interface {
	Create(ctx context.Context, userID string, req model.CreateSnippetRequest) (*model.Snippet, error)
	GetUserSnippets(ctx context.Context, userID string) ([]model.Snippet, error)
	Delete(ctx context.Context, userID, snippetID string) error
}

type snippetService struct {
	repo        repository.SnippetRepository
	notFoundErr error
}

// NewNoteService creates a SnippetService over the notes store
func NewNoteService(repo repository.SnippetRepository) SnippetService {
	return &snippetService{repo: repo, notFoundErr: ErrNoteNotFound}
}

// NewTextService creates a SnippetService over the texts store
func NewTextService(repo repository.SnippetRepository) SnippetService {
	return &snippetService{repo: repo, notFoundErr: ErrTextNotFound}
}

func (s *snippetService) Create(ctx context.Context, userID string, req model.CreateSnippetRequest) (*model.Snippet, error) {
	now := time.Now().UTC()
	snippet := &model.Snippet{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, snippet); err != nil {
		return nil, fmt.Errorf("failed to create snippet in repo: %w", err)
	}
	return snippet, nil
}

func (s *snippetService) GetUserSnippets(ctx context.Context, userID string) ([]model.Snippet, error) {
	snippets, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user snippets from repo: %w", err)
	}
	return snippets, nil
}

// Delete removes a snippet. Ownership is enforced by the lookup: a row
// belonging to another user is indistinguishable from a missing one.
func (s *snippetService) Delete(ctx context.Context, userID, snippetID string) error {
	snippet, err := s.repo.FindByIDAndUser(ctx, snippetID, userID)
	if err != nil {
		return fmt.Errorf("failed to find snippet for deletion: %w", err)
	}
	if snippet == nil {
		return s.notFoundErr
	}
	if err := s.repo.Delete(ctx, snippetID); err != nil {
		return fmt.Errorf("failed to delete snippet in repo: %w", err)
	}
	return nil
}
