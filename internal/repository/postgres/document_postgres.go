package postgres

import (
	"context"
	"database/sql"

	"docstore/internal/model"
	"docstore/internal/repository"
)

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

const documentColumns = `id, title, content, filename, filetype, file_url, owner_id, created_at`

// nullableText maps an empty string to SQL NULL for the optional file columns.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var (
		d        model.Document
		filename sql.NullString
		filetype sql.NullString
		fileURL  sql.NullString
	)
	if err := row.Scan(
		&d.ID,
		&d.Title,
		&d.Content,
		&filename,
		&filetype,
		&fileURL,
		&d.OwnerID,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	d.Filename = filename.String
	d.Filetype = filetype.String
	d.FileURL = fileURL.String
	return &d, nil
}

// Create inserts a new document row and returns the stored record.
func (r *DocumentPostgres) Create(ctx context.Context, doc *model.Document) (*model.Document, error) {
	const q = `
		INSERT INTO documents (title, content, filename, filetype, file_url, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + documentColumns
	row := r.db.QueryRowContext(ctx, q,
		doc.Title,
		doc.Content,
		nullableText(doc.Filename),
		nullableText(doc.Filetype),
		nullableText(doc.FileURL),
		doc.OwnerID,
		doc.CreatedAt,
	)
	return scanDocument(row)
}

// FindByID fetches a single document by its ID.
func (r *DocumentPostgres) FindByID(ctx context.Context, id int64) (*model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE id = $1
	`
	return scanDocument(r.db.QueryRowContext(ctx, q, id))
}

// FindAll returns every document ordered by id for a stable snapshot.
func (r *DocumentPostgres) FindAll(ctx context.Context) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

// Search matches the query as a case-sensitive substring of title or content.
// strpos avoids LIKE so the query needs no pattern escaping.
func (r *DocumentPostgres) Search(ctx context.Context, query string) ([]model.Document, error) {
	const q = `
		SELECT ` + documentColumns + `
		FROM documents
		WHERE strpos(title, $1) > 0 OR strpos(content, $1) > 0
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, err
	}
	return collectDocuments(rows)
}

func collectDocuments(rows *sql.Rows) ([]model.Document, error) {
	defer rows.Close()

	items := make([]model.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a document by ID. It does not return an error if the row does not exist.
func (r *DocumentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM documents WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Ignore rows affected: deleting a missing row is a no-op per contract.
	_, _ = res.RowsAffected()
	return nil
}
