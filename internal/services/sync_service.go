package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "kakeibo/internal/errors"
	"kakeibo/internal/logger"
	"kakeibo/internal/models"
)

// syncService applies client-submitted expense batches against the store.
type syncService struct {
	db       *gorm.DB
	store    ExpenseStorer
	maxItems int
}

// NewSyncService creates a new SyncServicer. maxItems bounds the batch size.
func NewSyncService(db *gorm.DB, store ExpenseStorer, maxItems int) SyncServicer {
	return &syncService{db: db, store: store, maxItems: maxItems}
}

// ApplyBatch applies each item independently and idempotently, in input
// order, inside one transaction. A storage failure on one item rolls back
// only that item (savepoint) and records its client_uuid as rejected; the
// rest of the batch continues. If the surrounding transaction fails, nothing
// is committed and the caller gets a batch-level error — the safe response
// is to resend the whole batch, which the upsert keying makes harmless.
//
// All items in a batch share a single timestamp captured here, so replaying
// a batch is byte-for-byte idempotent apart from that clock read.
func (s *syncService) ApplyBatch(items []SyncItem) (*SyncResult, error) {
	result := &SyncResult{Accepted: []string{}, Rejected: []string{}}
	if len(items) == 0 {
		return result, nil
	}
	if len(items) > s.maxItems {
		return nil, apperrors.WithMessage(apperrors.ErrBatchTooLarge,
			fmt.Sprintf("Too many items. Maximum %d items allowed per request", s.maxItems))
	}

	now := time.Now().UTC()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for i, item := range items {
			op := item.Op
			if op == "" {
				op = SyncOpUpsert
			}

			// delete stamps the soft-delete marker; upsert clears it,
			// which is what resurrects a previously deleted record.
			var deletedAt *time.Time
			if op == SyncOpDelete {
				deletedAt = &now
			}

			expense := &models.Expense{
				ClientUUID: item.ClientUUID,
				Date:       item.Date,
				Amount:     item.Amount,
				Category:   item.Category,
				Note:       item.Note,
				PaidBy:     item.PaidBy,
				CreatedAt:  now,
				UpdatedAt:  now,
				DeletedAt:  deletedAt,
			}

			sp := fmt.Sprintf("sync_item_%d", i)
			if err := tx.SavePoint(sp).Error; err != nil {
				return err
			}
			if err := s.store.Upsert(tx, expense); err != nil {
				if rbErr := tx.RollbackTo(sp).Error; rbErr != nil {
					return rbErr
				}
				logger.Get().Errorw("sync item failed",
					"client_uuid", item.ClientUUID,
					"op", string(op),
					"error", err.Error(),
				)
				result.Rejected = append(result.Rejected, item.ClientUUID)
				continue
			}
			result.Accepted = append(result.Accepted, item.ClientUUID)
		}
		return nil
	})
	if err != nil {
		// Whole batch rolled back; the per-item accounting above is void.
		return nil, apperrors.Wrap(apperrors.ErrSyncFailed, err)
	}

	return result, nil
}
