package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// expenseStore is the GORM-backed ExpenseStorer.
type expenseStore struct {
	db *gorm.DB
}

// NewExpenseStore creates a new ExpenseStorer.
func NewExpenseStore(db *gorm.DB) ExpenseStorer {
	return &expenseStore{db: db}
}

// FindByClientUUID returns the row for a client UUID, including soft-deleted rows.
func (s *expenseStore) FindByClientUUID(clientUUID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("client_uuid = ?", clientUUID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// Upsert inserts the expense, or overwrites the mutable fields of the existing
// row with the same client_uuid. The conflict resolution happens in a single
// statement on the unique index, never as a read followed by a write, so two
// concurrent syncs of the same client_uuid cannot create two rows.
// created_at is deliberately absent from the assignment list: it survives
// every overwrite, including a delete/upsert resurrection.
func (s *expenseStore) Upsert(tx *gorm.DB, expense *models.Expense) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "client_uuid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"date":       expense.Date,
			"amount":     expense.Amount,
			"category":   expense.Category,
			"note":       expense.Note,
			"paid_by":    expense.PaidBy,
			"deleted_at": expense.DeletedAt,
			"updated_at": expense.UpdatedAt,
		}),
	}).Create(expense).Error
}

// SoftDeleteByID marks an active row deleted. The deleted_at IS NULL guard
// makes the operation idempotent-by-failure: repeating it reports not-found
// instead of bumping the timestamp.
func (s *expenseStore) SoftDeleteByID(id uint, now time.Time) error {
	res := s.db.Model(&models.Expense{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": now,
			"updated_at": now,
		})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// activeRange scopes a query to non-deleted rows within [start, end].
func (s *expenseStore) activeRange(start, end time.Time) *gorm.DB {
	return s.db.Model(&models.Expense{}).
		Where("deleted_at IS NULL AND date >= ? AND date <= ?", start, end)
}

// SumRange returns the total amount over the range; zero when no rows match.
func (s *expenseStore) SumRange(start, end time.Time) (int64, error) {
	var total int64
	if err := s.activeRange(start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// SumByCategory returns per-category totals over the range, largest first.
func (s *expenseStore) SumByCategory(start, end time.Time) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	if err := s.activeRange(start, end).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// SumByPayer returns per-payer totals over the range, largest first.
func (s *expenseStore) SumByPayer(start, end time.Time) ([]PayerTotal, error) {
	var rows []PayerTotal
	if err := s.activeRange(start, end).
		Select("paid_by, COALESCE(SUM(amount), 0) AS total").
		Group("paid_by").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// ListRange returns all active rows in the range, newest date first and
// descending id within a date so the order is a stable total order.
func (s *expenseStore) ListRange(start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.activeRange(start, end).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// ListRangePage is ListRange with LIMIT/OFFSET paging applied.
func (s *expenseStore) ListRangePage(start, end time.Time, page pagination.LimitOffset) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.activeRange(start, end).
		Order("date DESC, id DESC").
		Scopes(pagination.Scope(page)).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
