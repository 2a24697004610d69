package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment lifecycle statuses. A payment starts pending and moves to exactly
// one terminal status.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment records a fee payment initiated through the Razorpay relay.
// Amount is kept in rupees as requested by the client; Razorpay receives the
// paise conversion separately and never overwrites this field.
type Payment struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID            string    `json:"user_id"`
	StudentName       string    `json:"student_name"`
	Description       string    `json:"description"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	RazorpayOrderID   string    `json:"razorpay_order_id" gorm:"uniqueIndex"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	RazorpaySignature string    `json:"razorpay_signature"`
	FeeItemID         string    `json:"fee_item_id,omitempty"`
	Status            string    `json:"status"` // pending, completed, failed
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
