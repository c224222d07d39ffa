package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/usecase"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// Upload expects multipart form data with a "file" part and optional title
// and description fields.
func (h *DocumentHandler) Upload(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	quoteID, ok := pathID(c, "id")
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, mapError(usecase.ErrInvalidDocument))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	defer file.Close()

	doc, err := h.usecase.Upload(c.Request.Context(), usecase.UploadInput{
		QuoteID:     &quoteID,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	quoteID, ok := pathID(c, "id")
	if !ok {
		return
	}

	docs, err := h.usecase.List(c.Request.Context(), quoteID, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": docs})
}

// Download redirects to a presigned URL, or returns it as JSON when
// ?redirect=false.
func (h *DocumentHandler) Download(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	url, doc, err := h.usecase.DownloadURL(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	if c.Query("redirect") == "false" {
		c.JSON(http.StatusOK, gin.H{"url": url, "document": doc})
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (h *DocumentHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id, actor); err != nil {
		respondError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
