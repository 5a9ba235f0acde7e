package model

import "time"

// Document represents a stored file (or a metadata-only note) in the system.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
//
// Filename, Filetype and FileURL are empty for documents created without a
// file. OwnerID is never exposed over the wire.
type Document struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Filename  string    `json:"filename,omitempty"`
	Filetype  string    `json:"filetype,omitempty"`
	FileURL   string    `json:"fileUrl,omitempty"`
	OwnerID   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is an owning identity. Every document belongs to exactly one user;
// a single default owner is seeded by the migration.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
