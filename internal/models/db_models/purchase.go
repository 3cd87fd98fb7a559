package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

// Transaction mirrors the checkout lifecycle at the payment provider.
// A Purchase row is only appended once the provider confirms payment.
type Transaction struct {
	BaseModel
	AccountID   uuid.UUID         `gorm:"type:uuid;index"`
	QuizID      int64             `gorm:"index"`
	AmountMinor int64
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"size:16;index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"index"` // idempotency across webhooks

	PaidAt *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}

// Purchase is the append-only entitlement record: its existence for
// (account, quiz) is what unlocks the gated features.
type Purchase struct {
	BaseModel
	AccountID     uuid.UUID `gorm:"type:uuid;index:idx_purchases_account_quiz"`
	QuizID        int64     `gorm:"index:idx_purchases_account_quiz"`
	ProviderTxnID string    `gorm:"index"`
	AmountMinor   int64
}
