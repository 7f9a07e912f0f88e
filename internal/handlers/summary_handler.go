package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/pagination"
	"kakeibo/internal/services"
)

// SummaryHandler handles range-based reporting requests.
type SummaryHandler struct {
	reportService services.ReportServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(reportService services.ReportServicer) *SummaryHandler {
	return &SummaryHandler{reportService: reportService}
}

// SummaryResponse is the total over an inclusive date range.
type SummaryResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Total int64  `json:"total"`
}

// parseRange extracts the required start/end query parameters.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	start, err := parseDateQuery(c, "start")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDateQuery(c, "end")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// Total sums expenses over a date range.
//
// @Summary     Range total
// @Description Sum of non-deleted expenses over an inclusive date range
// @Tags        summary
// @Produce     json
// @Param       start query string true "Start date (YYYY-MM-DD)"
// @Param       end   query string true "End date (YYYY-MM-DD)"
// @Success     200 {object} SummaryResponse "Total"
// @Failure     400 {object} ErrorResponse "Invalid or inverted range"
// @Router      /summary [get]
func (h *SummaryHandler) Total(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	total, err := h.reportService.Total(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{
		Start: start.Format("2006-01-02"),
		End:   end.Format("2006-01-02"),
		Total: total,
	})
}

// ByCategory sums a range per category in fixed display order.
//
// @Summary     Range totals by category
// @Description Per-category sums ordered by the canonical category order, then label
// @Tags        summary
// @Produce     json
// @Param       start query string true "Start date (YYYY-MM-DD)"
// @Param       end   query string true "End date (YYYY-MM-DD)"
// @Success     200 {array} services.CategoryTotal "Category totals"
// @Failure     400 {object} ErrorResponse "Invalid or inverted range"
// @Router      /summary/by-category [get]
func (h *SummaryHandler) ByCategory(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.ByCategory(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ByPayer sums a range per payer, largest first.
//
// @Summary     Range totals by payer
// @Description Per-payer sums ordered by descending total
// @Tags        summary
// @Produce     json
// @Param       start query string true "Start date (YYYY-MM-DD)"
// @Param       end   query string true "End date (YYYY-MM-DD)"
// @Success     200 {array} services.PayerTotal "Payer totals"
// @Failure     400 {object} ErrorResponse "Invalid or inverted range"
// @Router      /summary/by-payer [get]
func (h *SummaryHandler) ByPayer(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.ByPayer(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListExpenses pages through a range of expenses.
//
// @Summary     List expenses in a range
// @Description Paged non-deleted expenses over an inclusive date range, newest first
// @Tags        summary
// @Produce     json
// @Param       start  query string true  "Start date (YYYY-MM-DD)"
// @Param       end    query string true  "End date (YYYY-MM-DD)"
// @Param       limit  query int    false "Page size (1-200, default 50)"
// @Param       offset query int    false "Rows to skip (default 0)"
// @Success     200 {array} ExpenseResponse "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid range or paging parameters"
// @Router      /summary/expenses [get]
func (h *SummaryHandler) ListExpenses(c *gin.Context) {
	start, end, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.LimitOffset
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expenses, err := h.reportService.List(start, end, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newExpenseResponses(expenses))
}
