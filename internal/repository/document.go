package repository

import (
	"context"

	"docstore/internal/model"
)

// DocumentRepository defines data access for documents using SQL queries only.
// No business logic here — strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new document record and returns the stored form with
	// the database-assigned id.
	Create(ctx context.Context, doc *model.Document) (*model.Document, error)

	// FindByID returns a document by its ID, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id int64) (*model.Document, error)

	// FindAll returns every document. Order is stable within a snapshot.
	FindAll(ctx context.Context) ([]model.Document, error)

	// Search returns documents whose title or content contains the query as
	// a case-sensitive substring. A match on either field returns the
	// document once.
	Search(ctx context.Context, query string) ([]model.Document, error)

	// Delete removes a document by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
