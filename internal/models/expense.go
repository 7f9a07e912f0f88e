package models

import "time"

// Payer identifies who paid for an expense.
type Payer string

const (
	PayerMe  Payer = "me"
	PayerHer Payer = "her"
)

// Amount bounds for an expense, in the smallest currency unit (yen).
const (
	MinAmount = 0
	MaxAmount = 1_000_000_000
)

// Expense is the single persisted entity: one household expense row.
//
// ClientUUID is the business key. The client generates it once per expense
// and replays it on every retry, so a unique index on the column is what
// makes sync idempotent. DeletedAt is managed by hand rather than through
// gorm.DeletedAt: the reconciler has to read soft-deleted rows and clear
// the marker when an upsert resurrects a record, neither of which GORM's
// automatic soft delete allows.
type Expense struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	ClientUUID string     `gorm:"size:64;uniqueIndex;not null" json:"client_uuid"`
	Date       time.Time  `gorm:"type:date;not null;index" json:"date"`
	Amount     int64      `gorm:"not null" json:"amount"`
	Category   string     `gorm:"size:32;not null" json:"category"`
	Note       *string    `gorm:"size:200" json:"note"`
	PaidBy     Payer      `gorm:"size:8;not null" json:"paid_by"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// Deleted reports whether the row is soft-deleted.
func (e *Expense) Deleted() bool {
	return e.DeletedAt != nil
}
