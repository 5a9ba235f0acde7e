package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"docstore/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docColumns = []string{"id", "title", "content", "filename", "filetype", "file_url", "owner_id", "created_at"}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		Title:     "tok_notes.txt",
		Content:   "hello",
		Filename:  "tok_notes.txt",
		Filetype:  "text/plain",
		FileURL:   "/storage/tok_notes.txt",
		OwnerID:   1,
		CreatedAt: now,
	}

	rows := sqlmock.NewRows(docColumns).
		AddRow(int64(42), doc.Title, doc.Content, doc.Filename, doc.Filetype, doc.FileURL, doc.OwnerID, doc.CreatedAt)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.Title, doc.Content, doc.Filename, doc.Filetype, doc.FileURL, doc.OwnerID, doc.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, doc.FileURL, result.FileURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_CreateMetadataOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{Title: "note", Content: "body", OwnerID: 1, CreatedAt: now}

	rows := sqlmock.NewRows(docColumns).
		AddRow(int64(7), doc.Title, doc.Content, nil, nil, nil, doc.OwnerID, doc.CreatedAt)

	// Empty file fields are written as NULL.
	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.Title, doc.Content, nil, nil, nil, doc.OwnerID, doc.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result.Filename)
	assert.Empty(t, result.FileURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns).
			AddRow(int64(1), "file.txt", "body", "file.txt", "text/plain", "/storage/file.txt", int64(1), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(rows)

		doc, err := repo.FindByID(ctx, 1)

		assert.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, int64(1), doc.ID)
		assert.Equal(t, "/storage/file.txt", doc.FileURL)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		doc, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, doc)
	})
}

func TestDocumentPostgres_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)

	rows := sqlmock.NewRows(docColumns).
		AddRow(int64(1), "a", "", nil, nil, nil, int64(1), time.Now()).
		AddRow(int64(2), "b", "", "f", "text/plain", "/storage/f", int64(1), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM documents ORDER BY id").WillReturnRows(rows)

	docs, err := repo.FindAll(context.Background())

	assert.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, int64(1), docs[0].ID)
	assert.Empty(t, docs[0].Filename)
	assert.Equal(t, "text/plain", docs[1].Filetype)
}

func TestDocumentPostgres_Search(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)

	t.Run("matches", func(t *testing.T) {
		rows := sqlmock.NewRows(docColumns).
			AddRow(int64(3), "meeting notes", "agenda", nil, nil, nil, int64(1), time.Now())

		mock.ExpectQuery(`SELECT (.+) FROM documents\s+WHERE strpos\(title, \$1\) > 0 OR strpos\(content, \$1\) > 0`).
			WithArgs("notes").
			WillReturnRows(rows)

		docs, err := repo.Search(context.Background(), "notes")

		assert.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, int64(3), docs[0].ID)
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM documents\s+WHERE strpos\(title, \$1\) > 0 OR strpos\(content, \$1\) > 0`).
			WithArgs("zzz").
			WillReturnRows(sqlmock.NewRows(docColumns))

		docs, err := repo.Search(context.Background(), "zzz")

		assert.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})
}

func TestDocumentPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 1))
	})

	t.Run("missing row is a no-op", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM documents WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.Delete(ctx, 404))
	})
}
