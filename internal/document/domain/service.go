package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrDocumentNotFound = errors.New("document_not_found")
	ErrInvalidStatus    = errors.New("invalid_document_status")
	ErrInvalidURL       = errors.New("invalid_document_url")
)

type Repository interface {
	CreateBatch(ctx context.Context, docs []Document) error
	FindByID(ctx context.Context, id snowflake.ID) (*Document, error)
	FindByTransaction(ctx context.Context, transactionID snowflake.ID) ([]Document, error)
	Update(ctx context.Context, d *Document) error
}

type Service interface {
	// SeedForTransaction instantiates the DC checklist, plus the TOPA slots
	// when the property is tenanted.
	SeedForTransaction(ctx context.Context, transactionID snowflake.ID, tenanted bool) ([]Document, error)
	// ListForViewer returns the documents visible to the given role, with
	// required-but-missing slots first.
	ListForViewer(ctx context.Context, transactionID snowflake.ID, role string) ([]Document, error)
	// Link attaches an external share URL, inferring the storage provider.
	Link(ctx context.Context, id snowflake.ID, url string, uploadedBy snowflake.ID) (*Document, error)
	// Unlink detaches the external URL and returns the slot to missing.
	Unlink(ctx context.Context, id snowflake.ID) (*Document, error)
	// SetStatus moves a document between tracking states.
	SetStatus(ctx context.Context, id snowflake.ID, status Status) (*Document, error)
}
