package services

import (
	"testing"

	"gorm.io/gorm"

	"kakeibo/internal/models"
	"kakeibo/internal/testutil"
)

func newExpenseFixture(t *testing.T) (*gorm.DB, ExpenseServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	return db, NewExpenseService(NewExpenseStore(db))
}

func TestListMonth(t *testing.T) {
	t.Run("only_rows_in_month_newest_first", func(t *testing.T) {
		db, svc := newExpenseFixture(t)
		first := testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 1), 100, "食費", models.PayerMe)
		last := testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 31), 200, "外食", models.PayerHer)
		testutil.CreateTestExpense(t, db, testutil.Date(2023, 12, 31), 300, "食費", models.PayerMe)
		testutil.CreateTestExpense(t, db, testutil.Date(2024, 2, 1), 400, "食費", models.PayerMe)
		testutil.CreateDeletedExpense(t, db, testutil.Date(2024, 1, 15), 500, "食費", models.PayerMe)

		rows, err := svc.ListMonth("2024-01")
		testutil.AssertNoError(t, err)
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].ID != last.ID || rows[1].ID != first.ID {
			t.Errorf("expected newest first, got %+v", rows)
		}
	})

	t.Run("december_wraps_the_year", func(t *testing.T) {
		db, svc := newExpenseFixture(t)
		in := testutil.CreateTestExpense(t, db, testutil.Date(2024, 12, 31), 100, "食費", models.PayerMe)
		testutil.CreateTestExpense(t, db, testutil.Date(2025, 1, 1), 200, "食費", models.PayerMe)

		rows, err := svc.ListMonth("2024-12")
		testutil.AssertNoError(t, err)
		if len(rows) != 1 || rows[0].ID != in.ID {
			t.Errorf("expected only the December row, got %+v", rows)
		}
	})

	t.Run("invalid_month_format", func(t *testing.T) {
		_, svc := newExpenseFixture(t)
		for _, month := range []string{"", "2024", "2024-13", "2024/01", "January"} {
			_, err := svc.ListMonth(month)
			testutil.AssertAppError(t, err, "INVALID_MONTH")
		}
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("marks_row_deleted", func(t *testing.T) {
		db, svc := newExpenseFixture(t)
		expense := testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 5), 100, "食費", models.PayerMe)

		testutil.AssertNoError(t, svc.SoftDelete(expense.ID))

		var row models.Expense
		if err := db.First(&row, expense.ID).Error; err != nil {
			t.Fatalf("row should still exist in storage: %v", err)
		}
		if !row.Deleted() {
			t.Error("expected deleted_at to be set")
		}
	})

	t.Run("missing_row_is_not_found", func(t *testing.T) {
		_, svc := newExpenseFixture(t)
		testutil.AssertAppError(t, svc.SoftDelete(12345), "EXPENSE_NOT_FOUND")
	})

	t.Run("already_deleted_row_is_not_found", func(t *testing.T) {
		db, svc := newExpenseFixture(t)
		expense := testutil.CreateDeletedExpense(t, db, testutil.Date(2024, 1, 5), 100, "食費", models.PayerMe)

		testutil.AssertAppError(t, svc.SoftDelete(expense.ID), "EXPENSE_NOT_FOUND")
	})
}

func TestMonthlyStats(t *testing.T) {
	t.Run("aggregates_one_month", func(t *testing.T) {
		db, svc := newExpenseFixture(t)
		testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe)
		testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 6), 4000, "外食", models.PayerHer)
		testutil.CreateTestExpense(t, db, testutil.Date(2024, 1, 7), 500, "食費", models.PayerMe)
		testutil.CreateTestExpense(t, db, testutil.Date(2024, 2, 7), 9999, "食費", models.PayerMe)

		stats, err := svc.MonthlyStats("2024-01")
		testutil.AssertNoError(t, err)

		if stats.Month != "2024-01" {
			t.Errorf("expected month echoed back, got %q", stats.Month)
		}
		if stats.Total != 5500 {
			t.Errorf("expected total 5500, got %d", stats.Total)
		}
		// Stats orders categories by magnitude, not display rank.
		if len(stats.ByCategory) != 2 || stats.ByCategory[0].Category != "外食" || stats.ByCategory[0].Total != 4000 {
			t.Errorf("expected 外食 first by total, got %+v", stats.ByCategory)
		}
		if len(stats.ByPayer) != 2 || stats.ByPayer[0].PaidBy != models.PayerHer {
			t.Errorf("expected her first by total, got %+v", stats.ByPayer)
		}
	})

	t.Run("empty_month", func(t *testing.T) {
		_, svc := newExpenseFixture(t)

		stats, err := svc.MonthlyStats("2024-01")
		testutil.AssertNoError(t, err)
		if stats.Total != 0 || len(stats.ByCategory) != 0 || len(stats.ByPayer) != 0 {
			t.Errorf("expected empty stats, got %+v", stats)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		_, svc := newExpenseFixture(t)
		_, err := svc.MonthlyStats("not-a-month")
		testutil.AssertAppError(t, err, "INVALID_MONTH")
	})
}
