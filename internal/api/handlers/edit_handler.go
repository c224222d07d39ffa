package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/usecase"
)

type EditHandler struct {
	usecase usecase.IEditUseCase
}

func NewEditHandler(uc usecase.IEditUseCase) *EditHandler {
	return &EditHandler{usecase: uc}
}

// EditQuote takes a JSON object of column name to new value. The keys present
// are the fields being edited. The optional reason query parameter travels
// with a shipper's edit request.
func (h *EditHandler) EditQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var patch map[string]json.RawMessage
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.PatchQuote(c.Request.Context(), id, patch, c.Query("reason"), actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}

	status := http.StatusOK
	if !result.Applied {
		status = http.StatusAccepted
	}
	c.JSON(status, result)
}

func (h *EditHandler) ListHistory(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	history, err := h.usecase.ListEditHistory(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": history})
}

var editRequestStatuses = map[string]bool{
	"":                                 true,
	string(models.EditRequestPending):  true,
	string(models.EditRequestApproved): true,
	string(models.EditRequestRejected): true,
}

func (h *EditHandler) ListRequests(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	quoteID, ok := queryInt(c, "quote_id")
	if !ok {
		return
	}
	status := c.Query("status")
	if !editRequestStatuses[status] {
		respondError(c, errInvalidQuery)
		return
	}

	requests, err := h.usecase.ListEditRequests(c.Request.Context(), usecase.EditRequestQuery{
		QuoteID:   int64(quoteID),
		CompanyID: companyID,
		Status:    models.EditRequestStatus(status),
	}, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": requests})
}

func (h *EditHandler) Approve(c *gin.Context) {
	h.review(c, true)
}

func (h *EditHandler) Reject(c *gin.Context) {
	h.review(c, false)
}

func (h *EditHandler) review(c *gin.Context, approve bool) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	req, err := h.usecase.ReviewEditRequest(c.Request.Context(), id, approve, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, req)
}
