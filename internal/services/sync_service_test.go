package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"kakeibo/internal/models"
	"kakeibo/internal/testutil"
)

func newSyncFixture(t *testing.T) (*gorm.DB, SyncServicer, ExpenseStorer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	store := NewExpenseStore(db)
	return db, NewSyncService(db, store, 1000), store
}

func upsertItem(uuid string, date time.Time, amount int64, cat string, paidBy models.Payer) SyncItem {
	return SyncItem{
		ClientUUID: uuid,
		Date:       date,
		Amount:     amount,
		Category:   cat,
		PaidBy:     paidBy,
		Op:         SyncOpUpsert,
	}
}

func countExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Expense{}).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestApplyBatch(t *testing.T) {
	t.Run("upsert_creates_row", func(t *testing.T) {
		db, svc, store := newSyncFixture(t)

		uuid := "aaaaaaaaaa"
		result, err := svc.ApplyBatch([]SyncItem{
			upsertItem(uuid, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe),
		})
		testutil.AssertNoError(t, err)

		if len(result.Accepted) != 1 || result.Accepted[0] != uuid {
			t.Fatalf("expected accepted [%q], got %v", uuid, result.Accepted)
		}
		if len(result.Rejected) != 0 {
			t.Errorf("expected no rejected items, got %v", result.Rejected)
		}

		row, err := store.FindByClientUUID(uuid)
		testutil.AssertNoError(t, err)
		if row.Amount != 1000 || row.Category != "食費" || row.PaidBy != models.PayerMe {
			t.Errorf("unexpected row: %+v", row)
		}
		if row.Deleted() {
			t.Error("freshly upserted row must be active")
		}
		if n := countExpenses(t, db); n != 1 {
			t.Errorf("expected 1 row, got %d", n)
		}
	})

	t.Run("identical_replay_is_idempotent", func(t *testing.T) {
		db, svc, _ := newSyncFixture(t)

		batch := []SyncItem{
			upsertItem("aaaaaaaaaa", testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe),
		}
		for i := 0; i < 2; i++ {
			result, err := svc.ApplyBatch(batch)
			testutil.AssertNoError(t, err)
			if len(result.Accepted) != 1 || result.Accepted[0] != "aaaaaaaaaa" {
				t.Fatalf("replay %d: expected accepted, got %v", i, result)
			}
		}
		if n := countExpenses(t, db); n != 1 {
			t.Errorf("expected 1 row after replay, got %d", n)
		}
	})

	t.Run("re_upsert_overwrites_fields", func(t *testing.T) {
		db, svc, store := newSyncFixture(t)

		uuid := "bbbbbbbbbb"
		_, err := svc.ApplyBatch([]SyncItem{
			upsertItem(uuid, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe),
		})
		testutil.AssertNoError(t, err)

		_, err = svc.ApplyBatch([]SyncItem{
			upsertItem(uuid, testutil.Date(2024, 2, 1), 2500, "外食", models.PayerHer),
		})
		testutil.AssertNoError(t, err)

		row, err := store.FindByClientUUID(uuid)
		testutil.AssertNoError(t, err)
		if row.Amount != 2500 || row.Category != "外食" || row.PaidBy != models.PayerHer {
			t.Errorf("expected last write to win, got %+v", row)
		}
		if n := countExpenses(t, db); n != 1 {
			t.Errorf("expected 1 row, got %d", n)
		}
	})

	t.Run("delete_soft_deletes", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		uuid := "cccccccccc"
		_, err := svc.ApplyBatch([]SyncItem{
			upsertItem(uuid, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe),
		})
		testutil.AssertNoError(t, err)

		deleteItem := upsertItem(uuid, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe)
		deleteItem.Op = SyncOpDelete
		result, err := svc.ApplyBatch([]SyncItem{deleteItem})
		testutil.AssertNoError(t, err)
		if len(result.Accepted) != 1 {
			t.Fatalf("expected delete to be accepted, got %v", result)
		}

		row, err := store.FindByClientUUID(uuid)
		testutil.AssertNoError(t, err)
		if !row.Deleted() {
			t.Error("expected row to be soft-deleted")
		}
	})

	t.Run("upsert_after_delete_resurrects", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		uuid := "dddddddddd"
		first := upsertItem(uuid, testutil.Date(2024, 1, 5), 1000, "食費", models.PayerMe)
		deleted := first
		deleted.Op = SyncOpDelete
		last := upsertItem(uuid, testutil.Date(2024, 1, 7), 3000, "日用品", models.PayerHer)

		for _, item := range []SyncItem{first, deleted, last} {
			_, err := svc.ApplyBatch([]SyncItem{item})
			testutil.AssertNoError(t, err)
		}

		row, err := store.FindByClientUUID(uuid)
		testutil.AssertNoError(t, err)
		if row.Deleted() {
			t.Fatal("expected record to be resurrected")
		}
		if row.Amount != 3000 || row.Category != "日用品" || row.PaidBy != models.PayerHer {
			t.Errorf("expected fields from last upsert, got %+v", row)
		}
	})

	t.Run("delete_of_unknown_uuid_inserts_deleted_row", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		item := upsertItem("eeeeeeeeee", testutil.Date(2024, 1, 5), 500, "食費", models.PayerMe)
		item.Op = SyncOpDelete
		result, err := svc.ApplyBatch([]SyncItem{item})
		testutil.AssertNoError(t, err)
		if len(result.Accepted) != 1 {
			t.Fatalf("expected accepted, got %v", result)
		}

		row, err := store.FindByClientUUID("eeeeeeeeee")
		testutil.AssertNoError(t, err)
		if !row.Deleted() {
			t.Error("expected row to be created already soft-deleted")
		}
	})

	t.Run("empty_op_defaults_to_upsert", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		item := upsertItem("ffffffffff", testutil.Date(2024, 1, 5), 500, "食費", models.PayerMe)
		item.Op = ""
		_, err := svc.ApplyBatch([]SyncItem{item})
		testutil.AssertNoError(t, err)

		row, err := store.FindByClientUUID("ffffffffff")
		testutil.AssertNoError(t, err)
		if row.Deleted() {
			t.Error("expected default op to behave as upsert")
		}
	})

	t.Run("batch_shares_one_timestamp", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		_, err := svc.ApplyBatch([]SyncItem{
			upsertItem("1111111111", testutil.Date(2024, 1, 5), 100, "食費", models.PayerMe),
			upsertItem("2222222222", testutil.Date(2024, 1, 6), 200, "外食", models.PayerHer),
		})
		testutil.AssertNoError(t, err)

		a, err := store.FindByClientUUID("1111111111")
		testutil.AssertNoError(t, err)
		b, err := store.FindByClientUUID("2222222222")
		testutil.AssertNoError(t, err)
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			t.Errorf("expected one shared timestamp per batch, got %v and %v", a.UpdatedAt, b.UpdatedAt)
		}
	})

	t.Run("oversized_batch_rejected_without_writes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
		store := NewExpenseStore(db)
		svc := NewSyncService(db, store, 2)

		items := []SyncItem{
			upsertItem("1111111111", testutil.Date(2024, 1, 1), 1, "食費", models.PayerMe),
			upsertItem("2222222222", testutil.Date(2024, 1, 2), 2, "食費", models.PayerMe),
			upsertItem("3333333333", testutil.Date(2024, 1, 3), 3, "食費", models.PayerMe),
		}
		_, err := svc.ApplyBatch(items)
		testutil.AssertAppError(t, err, "BATCH_TOO_LARGE")

		if n := countExpenses(t, db); n != 0 {
			t.Errorf("expected no rows after rejected batch, got %d", n)
		}
	})

	t.Run("empty_batch_is_a_no_op", func(t *testing.T) {
		db, svc, _ := newSyncFixture(t)

		result, err := svc.ApplyBatch(nil)
		testutil.AssertNoError(t, err)
		if len(result.Accepted) != 0 || len(result.Rejected) != 0 {
			t.Errorf("expected empty result, got %+v", result)
		}
		if n := countExpenses(t, db); n != 0 {
			t.Errorf("expected no rows, got %d", n)
		}
	})

	t.Run("mixed_batch_applies_in_order", func(t *testing.T) {
		_, svc, store := newSyncFixture(t)

		// The same uuid twice in one batch: the later item wins.
		result, err := svc.ApplyBatch([]SyncItem{
			upsertItem("abcdefghij", testutil.Date(2024, 1, 5), 100, "食費", models.PayerMe),
			upsertItem("abcdefghij", testutil.Date(2024, 1, 5), 900, "食費", models.PayerMe),
		})
		testutil.AssertNoError(t, err)
		if len(result.Accepted) != 2 {
			t.Fatalf("expected both items accepted, got %v", result)
		}

		row, err := store.FindByClientUUID("abcdefghij")
		testutil.AssertNoError(t, err)
		if row.Amount != 900 {
			t.Errorf("expected later item to win, got amount %d", row.Amount)
		}
	})
}
