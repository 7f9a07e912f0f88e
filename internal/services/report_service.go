package services

import (
	"sort"
	"time"

	"kakeibo/internal/category"
	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// reportService covers range-based reporting over active expenses.
type reportService struct {
	store ExpenseStorer
}

// NewReportService creates a new ReportServicer.
func NewReportService(store ExpenseStorer) ReportServicer {
	return &reportService{store: store}
}

// validateRange is applied by every reporting operation, aggregate and
// listing alike: an inverted range is a caller error, never an empty result.
func validateRange(start, end time.Time) error {
	if start.After(end) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}

// Total returns the summed amount over [start, end]; zero when empty.
func (s *reportService) Total(start, end time.Time) (int64, error) {
	if err := validateRange(start, end); err != nil {
		return 0, err
	}
	return s.store.SumRange(start, end)
}

// ByCategory returns per-category totals ordered by the fixed category rank,
// label-alphabetical within a rank. Display order wins over magnitude here;
// the magnitude-ordered view is MonthlyStats.
func (s *reportService) ByCategory(start, end time.Time) ([]CategoryTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	rows, err := s.store.SumByCategory(start, end)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return category.Less(rows[i].Category, rows[j].Category)
	})
	if rows == nil {
		rows = []CategoryTotal{}
	}
	return rows, nil
}

// ByPayer returns per-payer totals ordered by descending total.
func (s *reportService) ByPayer(start, end time.Time) ([]PayerTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	rows, err := s.store.SumByPayer(start, end)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []PayerTotal{}
	}
	return rows, nil
}

// List returns a page of active expenses in the range, date desc then id desc.
func (s *reportService) List(start, end time.Time, page pagination.LimitOffset) ([]models.Expense, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	page.Defaults()
	return s.store.ListRangePage(start, end, page)
}
