package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
	"kakeibo/internal/models"
)

// ErrorResponse documents the JSON error envelope for Swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ExpenseResponse is one expense row as returned by listing endpoints.
type ExpenseResponse struct {
	ID         uint         `json:"id"`
	ClientUUID string       `json:"client_uuid"`
	Date       string       `json:"date"`
	Amount     int64        `json:"amount"`
	Category   string       `json:"category"`
	Note       *string      `json:"note"`
	PaidBy     models.Payer `json:"paid_by"`
}

// newExpenseResponses maps expense rows to their wire representation,
// formatting dates without a time component.
func newExpenseResponses(expenses []models.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ExpenseResponse{
			ID:         e.ID,
			ClientUUID: e.ClientUUID,
			Date:       e.Date.Format("2006-01-02"),
			Amount:     e.Amount,
			Category:   e.Category,
			Note:       e.Note,
			PaidBy:     e.PaidBy,
		})
	}
	return out
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseDateQuery parses a required YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	v := c.Query(name)
	if v == "" {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, name+" is required")
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, name+" must be in YYYY-MM-DD format")
	}
	return t, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
