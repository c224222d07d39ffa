package usecase

import (
	"context"
	"io"
	"strings"

	"github.com/safar/freight-quotes/internal/blob"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/usecase/interfaces"
	"go.uber.org/zap"
)

type UploadInput struct {
	QuoteID     *int64
	Title       string
	Description string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type IDocumentUseCase interface {
	Upload(ctx context.Context, in UploadInput, actor models.Actor) (*models.Document, error)
	List(ctx context.Context, quoteID int64, actor models.Actor) ([]models.Document, error)
	DownloadURL(ctx context.Context, id int64, actor models.Actor) (string, *models.Document, error)
	Delete(ctx context.Context, id int64, actor models.Actor) error
}

type DocumentUseCase struct {
	docs     interfaces.IDocumentRepository
	quotes   interfaces.IQuoteRepository
	blobs    interfaces.IBlobStorage
	access   access
	maxBytes int64
	logger   *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	docs interfaces.IDocumentRepository,
	quotes interfaces.IQuoteRepository,
	blobs interfaces.IBlobStorage,
	profiles interfaces.IProfileRepository,
	maxBytes int64,
	logger *zap.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		docs:     docs,
		quotes:   quotes,
		blobs:    blobs,
		access:   access{profiles: profiles},
		maxBytes: maxBytes,
		logger:   logger,
	}
}

func (u *DocumentUseCase) checkQuote(ctx context.Context, quoteID int64, actor models.Actor) error {
	if quoteID <= 0 {
		return ErrInvalidQuoteID
	}
	q, err := u.quotes.GetQuote(ctx, quoteID)
	if err != nil {
		return err
	}
	return u.access.canView(ctx, actor, q.UserID, q.CompanyID)
}

// Upload stores the file first and the metadata row second. If the row
// cannot be written the stored object is removed again.
func (u *DocumentUseCase) Upload(ctx context.Context, in UploadInput, actor models.Actor) (*models.Document, error) {
	in.FileName = strings.TrimSpace(in.FileName)
	in.Title = strings.TrimSpace(in.Title)
	if in.FileName == "" || in.Body == nil {
		return nil, ErrInvalidDocument
	}
	if in.Title == "" {
		in.Title = in.FileName
	}
	if u.maxBytes > 0 && in.Size > u.maxBytes {
		return nil, ErrFileTooLarge
	}

	if in.QuoteID != nil {
		if err := u.checkQuote(ctx, *in.QuoteID, actor); err != nil {
			return nil, err
		}
	}

	companyID, err := u.access.companyOf(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	key := blob.ObjectKey(companyID, actor.UserID, in.QuoteID, in.Title, in.FileName)
	if err := u.blobs.Put(ctx, key, in.ContentType, in.Body, in.Size); err != nil {
		return nil, err
	}

	doc, err := u.docs.InsertDocument(ctx, &models.Document{
		QuoteID:     in.QuoteID,
		UserID:      actor.UserID,
		CompanyID:   companyID,
		Title:       in.Title,
		Description: in.Description,
		FileName:    in.FileName,
		FileType:    in.ContentType,
		StorageKey:  key,
	})
	if err != nil {
		if delErr := u.blobs.Delete(ctx, key); delErr != nil {
			u.logger.Warn("orphaned document object",
				zap.String("key", key),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	u.logger.Info("document uploaded",
		zap.Int64("document_id", doc.ID),
		zap.String("key", key),
	)
	return doc, nil
}

func (u *DocumentUseCase) List(ctx context.Context, quoteID int64, actor models.Actor) ([]models.Document, error) {
	if err := u.checkQuote(ctx, quoteID, actor); err != nil {
		return nil, err
	}
	return u.docs.ListDocuments(ctx, quoteID)
}

func (u *DocumentUseCase) DownloadURL(ctx context.Context, id int64, actor models.Actor) (string, *models.Document, error) {
	doc, err := u.docs.GetDocument(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if err := u.access.canView(ctx, actor, doc.UserID, doc.CompanyID); err != nil {
		return "", nil, err
	}

	url, err := u.blobs.PresignGet(ctx, doc.StorageKey, doc.FileName)
	if err != nil {
		return "", nil, err
	}
	return url, doc, nil
}

// Delete removes the row, then the object. Brokers and the uploader may
// delete. A failed object delete is logged only.
func (u *DocumentUseCase) Delete(ctx context.Context, id int64, actor models.Actor) error {
	doc, err := u.docs.GetDocument(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && doc.UserID != actor.UserID {
		return ErrForbidden
	}

	if err := u.docs.DeleteDocument(ctx, id); err != nil {
		return err
	}
	if err := u.blobs.Delete(ctx, doc.StorageKey); err != nil {
		u.logger.Warn("orphaned document object",
			zap.String("key", doc.StorageKey),
			zap.Error(err),
		)
	}
	return nil
}
