package repository

import (
	"context"
	"testing"
	"time"

	"secure_vault/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteRepoMock(t *testing.T) (pgxmock.PgxPoolIface, SnippetRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewNoteRepository(mock)
}

func TestSnippetRepository_Create(t *testing.T) {
	mock, repo := newNoteRepoMock(t)

	now := time.Now().UTC()
	snippet := &model.Snippet{
		ID:        "n1",
		UserID:    "u1",
		Title:     "groceries",
		Content:   "milk, eggs",
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO notes").
		WithArgs("n1", "u1", "groceries", "milk, eggs", now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), snippet)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnippetRepository_FindByUser(t *testing.T) {
	mock, repo := newNoteRepoMock(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM notes WHERE user_id").
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}).
			AddRow("n2", "u1", "second", "newer", now, now).
			AddRow("n1", "u1", "first", "older", now.Add(-time.Hour), now.Add(-time.Hour)))

	snippets, err := repo.FindByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "n2", snippets[0].ID)
	assert.Equal(t, "n1", snippets[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnippetRepository_FindByIDAndUser_NotFound(t *testing.T) {
	mock, repo := newNoteRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM notes WHERE id").
		WithArgs("n1", "someone-else").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "title", "content", "created_at", "updated_at"}))

	snippet, err := repo.FindByIDAndUser(context.Background(), "n1", "someone-else")

	assert.NoError(t, err)
	assert.Nil(t, snippet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnippetRepository_Delete_NotFound(t *testing.T) {
	mock, repo := newNoteRepoMock(t)

	mock.ExpectExec("DELETE FROM notes").
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTextRepository_UsesTextsTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	repo := NewTextRepository(mock)

	mock.ExpectExec("DELETE FROM texts").
		WithArgs("t1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
