package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/services"
)

// ExpenseHandler handles month-scoped expense requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// requireMonth extracts the mandatory month query parameter. Format
// validation happens in the service so every month-scoped operation
// enforces it the same way.
func requireMonth(c *gin.Context) (string, error) {
	month := c.Query("month")
	if month == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidMonth, "month is required")
	}
	return month, nil
}

// ListByMonth lists non-deleted expenses for one calendar month.
//
// @Summary     List expenses for a month
// @Description List non-deleted expenses for a calendar month, newest first
// @Tags        expenses
// @Produce     json
// @Param       month query string true "Calendar month (YYYY-MM)"
// @Success     200 {array} ExpenseResponse "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListByMonth(c *gin.Context) {
	month, err := requireMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.ListMonth(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenseResponses(expenses))
}

// Delete soft-deletes one expense by server id.
//
// @Summary     Delete an expense
// @Description Soft-delete an expense; already-deleted and unknown ids report not found
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.SoftDelete(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// MonthlyStats returns one month's totals.
//
// @Summary     Monthly statistics
// @Description Total, per-category (largest first), and per-payer sums for a month
// @Tags        stats
// @Produce     json
// @Param       month query string true "Calendar month (YYYY-MM)"
// @Success     200 {object} services.MonthlyStats "Aggregates"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /stats [get]
func (h *ExpenseHandler) MonthlyStats(c *gin.Context) {
	month, err := requireMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	stats, err := h.expenseService.MonthlyStats(month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
