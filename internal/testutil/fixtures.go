package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kakeibo/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewClientUUID returns a fresh client-side identifier, the way the mobile
// client would mint one.
func NewClientUUID() string {
	return uuid.New().String()
}

// Date builds a date-only UTC timestamp, matching how expense dates are stored.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CreateTestExpense inserts an active expense row with sensible defaults.
func CreateTestExpense(t *testing.T, db *gorm.DB, date time.Time, amount int64, cat string, paidBy models.Payer) *models.Expense {
	t.Helper()

	note := fmt.Sprintf("test expense %d", nextID())
	now := time.Now().UTC()
	expense := &models.Expense{
		ClientUUID: NewClientUUID(),
		Date:       date,
		Amount:     amount,
		Category:   cat,
		Note:       &note,
		PaidBy:     paidBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateDeletedExpense inserts a soft-deleted expense row.
func CreateDeletedExpense(t *testing.T, db *gorm.DB, date time.Time, amount int64, cat string, paidBy models.Payer) *models.Expense {
	t.Helper()

	expense := CreateTestExpense(t, db, date, amount, cat, paidBy)
	now := time.Now().UTC()
	if err := db.Model(expense).Updates(map[string]interface{}{
		"deleted_at": now,
		"updated_at": now,
	}).Error; err != nil {
		t.Fatalf("failed to soft-delete test expense: %v", err)
	}
	expense.DeletedAt = &now
	return expense
}
