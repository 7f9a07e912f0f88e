package services

import (
	"time"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
)

// expenseService covers the month-scoped expense endpoints.
type expenseService struct {
	store ExpenseStorer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(store ExpenseStorer) ExpenseServicer {
	return &expenseService{store: store}
}

// monthRange resolves a "YYYY-MM" month to its inclusive [first, last] day span.
func monthRange(month string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidMonth
	}
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// ListMonth lists active expenses for a calendar month, date desc then id desc.
func (s *expenseService) ListMonth(month string) ([]models.Expense, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	return s.store.ListRange(start, end)
}

// SoftDelete marks an expense deleted. Missing and already-deleted rows both
// report not-found; there is no hard delete anywhere in the API.
func (s *expenseService) SoftDelete(id uint) error {
	return s.store.SoftDeleteByID(id, time.Now().UTC())
}

// MonthlyStats aggregates one month: total, by-category ordered by
// descending total, by-payer ordered by descending total.
func (s *expenseService) MonthlyStats(month string) (*MonthlyStats, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	total, err := s.store.SumRange(start, end)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.store.SumByCategory(start, end)
	if err != nil {
		return nil, err
	}
	byPayer, err := s.store.SumByPayer(start, end)
	if err != nil {
		return nil, err
	}

	if byCategory == nil {
		byCategory = []CategoryTotal{}
	}
	if byPayer == nil {
		byPayer = []PayerTotal{}
	}

	return &MonthlyStats{
		Month:      month,
		Total:      total,
		ByCategory: byCategory,
		ByPayer:    byPayer,
	}, nil
}
