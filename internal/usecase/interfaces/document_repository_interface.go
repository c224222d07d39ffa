package interfaces

import (
	"context"
	"io"

	"github.com/safar/freight-quotes/internal/models"
)

type IDocumentRepository interface {
	InsertDocument(ctx context.Context, d *models.Document) (*models.Document, error)
	GetDocument(ctx context.Context, id int64) (*models.Document, error)
	ListDocuments(ctx context.Context, quoteID int64) ([]models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// IBlobStorage holds document bytes. Keys are opaque to the caller.
type IBlobStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PresignGet(ctx context.Context, key, fileName string) (string, error)
	Delete(ctx context.Context, key string) error
}
