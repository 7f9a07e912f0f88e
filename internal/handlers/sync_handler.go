package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/services"
)

// SyncHandler handles batch synchronization from offline-first clients.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncExpenseItem is one pending client operation.
type SyncExpenseItem struct {
	ClientUUID string  `json:"client_uuid" binding:"required,min=10,max=64"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	Amount     *int64  `json:"amount" binding:"required,min=0,max=1000000000"`
	Category   string  `json:"category" binding:"required,min=1,max=32"`
	Note       *string `json:"note" binding:"omitempty,max=200"`
	PaidBy     string  `json:"paid_by" binding:"required,payer"`
	Op         string  `json:"op" binding:"omitempty,sync_op"`
}

// SyncExpensesRequest is the sync batch payload.
type SyncExpensesRequest struct {
	Items []SyncExpenseItem `json:"items" binding:"required,dive"`
}

// SyncExpenses applies a batch of client operations.
//
// Validation is strict at the batch level: one structurally invalid item
// rejects the whole request before anything touches storage. Storage-level
// failures on individual items are tolerated and reported in "rejected".
//
// @Summary     Sync expense operations
// @Description Apply a batch of client-generated upsert/delete operations idempotently
// @Tags        sync
// @Accept      json
// @Produce     json
// @Param       request body SyncExpensesRequest true "Batch of operations"
// @Success     200 {object} services.SyncResult "Per-item outcome"
// @Failure     400 {object} ErrorResponse "Invalid payload or oversized batch"
// @Failure     500 {object} ErrorResponse "Batch transaction failed"
// @Router      /sync/expenses [post]
func (h *SyncHandler) SyncExpenses(c *gin.Context) {
	var req SyncExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	items := make([]services.SyncItem, 0, len(req.Items))
	for _, item := range req.Items {
		// Already validated by the datetime binding above.
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date "+item.Date))
			return
		}
		items = append(items, services.SyncItem{
			ClientUUID: item.ClientUUID,
			Date:       date,
			Amount:     *item.Amount,
			Category:   item.Category,
			Note:       item.Note,
			PaidBy:     models.Payer(item.PaidBy),
			Op:         services.SyncOp(item.Op),
		})
	}

	result, err := h.syncService.ApplyBatch(items)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
