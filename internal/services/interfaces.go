package services

import (
	"time"

	"gorm.io/gorm"

	"kakeibo/internal/models"
	"kakeibo/internal/pagination"
)

// SyncOp is the operation a client requests for one sync item.
type SyncOp string

const (
	SyncOpUpsert SyncOp = "upsert"
	SyncOpDelete SyncOp = "delete"
)

// SyncItem is one client-submitted expense operation.
type SyncItem struct {
	ClientUUID string
	Date       time.Time
	Amount     int64
	Category   string
	Note       *string
	PaidBy     models.Payer
	Op         SyncOp
}

// SyncResult reports the per-item outcome of a sync batch, in input order.
// It is only meaningful when the batch transaction committed.
type SyncResult struct {
	Accepted []string `json:"accepted"`
	Rejected []string `json:"rejected"`
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// PayerTotal is the summed amount for one payer.
type PayerTotal struct {
	PaidBy models.Payer `json:"paid_by"`
	Total  int64        `json:"total"`
}

// MonthlyStats is the /stats aggregate for one calendar month.
// ByCategory here is ordered by descending total; the rank-ordered view
// lives on the summary path.
type MonthlyStats struct {
	Month      string          `json:"month"`
	Total      int64           `json:"total"`
	ByCategory []CategoryTotal `json:"by_category"`
	ByPayer    []PayerTotal    `json:"by_payer"`
}

// ExpenseStorer is the persistence contract for expenses. All range queries
// use inclusive [start, end] date bounds and exclude soft-deleted rows;
// FindByClientUUID is the one read that includes them.
type ExpenseStorer interface {
	// FindByClientUUID returns the row for a client UUID, soft-deleted or not.
	FindByClientUUID(clientUUID string) (*models.Expense, error)
	// Upsert atomically inserts the expense or, when a row with the same
	// client_uuid exists, overwrites its mutable fields in place. It runs on
	// the given handle so sync batches can supply their transaction.
	Upsert(tx *gorm.DB, expense *models.Expense) error
	// SoftDeleteByID marks an active row deleted at the given time.
	// Returns ErrExpenseNotFound for missing or already-deleted rows.
	SoftDeleteByID(id uint, now time.Time) error

	SumRange(start, end time.Time) (int64, error)
	SumByCategory(start, end time.Time) ([]CategoryTotal, error)
	SumByPayer(start, end time.Time) ([]PayerTotal, error)
	ListRange(start, end time.Time) ([]models.Expense, error)
	ListRangePage(start, end time.Time, page pagination.LimitOffset) ([]models.Expense, error)
}

// SyncServicer reconciles client-submitted expense batches.
type SyncServicer interface {
	ApplyBatch(items []SyncItem) (*SyncResult, error)
}

// ExpenseServicer covers the month-scoped expense endpoints.
type ExpenseServicer interface {
	ListMonth(month string) ([]models.Expense, error)
	SoftDelete(id uint) error
	MonthlyStats(month string) (*MonthlyStats, error)
}

// ReportServicer covers range-based reporting. Every operation validates
// start <= end and rejects violations with ErrInvalidDateRange.
type ReportServicer interface {
	Total(start, end time.Time) (int64, error)
	ByCategory(start, end time.Time) ([]CategoryTotal, error)
	ByPayer(start, end time.Time) ([]PayerTotal, error)
	List(start, end time.Time, page pagination.LimitOffset) ([]models.Expense, error)
}
