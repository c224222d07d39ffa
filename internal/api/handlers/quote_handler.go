package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safar/freight-quotes/internal/models"
	"github.com/safar/freight-quotes/internal/store"
	"github.com/safar/freight-quotes/internal/usecase"
)

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var q models.Quote
	if err := c.ShouldBindJSON(&q); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.CreateQuote(c.Request.Context(), q, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	q, err := h.usecase.GetQuote(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, q)
}

var stages = map[string]store.Stage{
	"":       store.StageAll,
	"all":    store.StageAll,
	"quotes": store.StageQuotes,
	"orders": store.StageOrders,
}

// ListQuotes supports page, page_size, status, brokers_status, stage
// (all|quotes|orders) and company_id.
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, ok := queryInt(c, "page")
	if !ok {
		return
	}
	pageSize, ok := queryInt(c, "page_size")
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}
	stage, known := stages[c.Query("stage")]
	if !known {
		respondError(c, errInvalidQuery)
		return
	}

	result, err := h.usecase.ListQuotes(c.Request.Context(), usecase.QuoteQuery{
		CompanyID:     companyID,
		Status:        c.Query("status"),
		BrokersStatus: c.Query("brokers_status"),
		Stage:         stage,
		Page:          page,
		PageSize:      pageSize,
	}, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuoteHandler) ListOrders(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	companyID, ok := queryUUID(c, "company_id")
	if !ok {
		return
	}

	result, err := h.usecase.ListOrders(c.Request.Context(), usecase.OrderQuery{
		CompanyID: companyID,
		Status:    c.Query("status"),
		Cursor:    c.Query("cursor"),
		Limit:     limit,
	}, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *QuoteHandler) Duplicate(c *gin.Context) {
	h.duplicate(c, false)
}

func (h *QuoteHandler) Reverse(c *gin.Context) {
	h.duplicate(c, true)
}

func (h *QuoteHandler) duplicate(c *gin.Context, reverse bool) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	copied, err := h.usecase.Duplicate(c.Request.Context(), id, reverse, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, copied)
}

type setStatusRequest struct {
	Column models.StatusColumn `json:"column" binding:"required"`
	Value  string              `json:"value" binding:"required"`
}

func (h *QuoteHandler) SetStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload setStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	q, err := h.usecase.SetStatus(c.Request.Context(), id, payload.Column, payload.Value, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) ConvertToOrder(c *gin.Context) {
	h.transition(c, h.usecase.ConvertToOrder)
}

func (h *QuoteHandler) Archive(c *gin.Context) {
	h.transition(c, h.usecase.Archive)
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	h.transition(c, h.usecase.Reject)
}

func (h *QuoteHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *QuoteHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id int64, actor models.Actor) (*models.Quote, error),
) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	q, err := apply(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, q)
}

type statusOptions struct {
	Status        []string `json:"status"`
	BrokersStatus []string `json:"brokers_status"`
	Orders        []string `json:"orders"`
	Terminal      []string `json:"terminal"`
}

// Statuses returns the option lists of both status columns.
func (h *QuoteHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, statusOptions{
		Status:        models.QuoteStatuses,
		BrokersStatus: models.BrokersStatuses,
		Orders:        models.OrderStatuses(),
		Terminal:      models.TerminalStatuses(),
	})
}
