package store

import (
	"errors"

	"github.com/smartlink-edu/campus-payments/models"
)

// ErrNotFound is returned when a record id does not resolve.
var ErrNotFound = errors.New("record not found")

// PaymentStore persists payment records and reads fee items. The terminal
// transitions are conditional writes: a record leaves pending exactly once,
// even when two verify calls race for the same payment.
type PaymentStore interface {
	// CreatePayment inserts a new record; the implementation assigns an id
	// when the record has none.
	CreatePayment(payment *models.Payment) error

	// PaymentByID returns the record or ErrNotFound.
	PaymentByID(id string) (*models.Payment, error)

	// ListPayments returns all records, newest created first.
	ListPayments() ([]models.Payment, error)

	// CompletePayment moves a pending record to completed, storing the
	// provider payment id and signature. Returns false when the record was
	// no longer pending (already completed or failed).
	CompletePayment(id, razorpayPaymentID, razorpaySignature string) (bool, error)

	// FailPayment moves a pending record to failed. Returns false when the
	// record was no longer pending.
	FailPayment(id string) (bool, error)

	// ListFeeItems returns all fee items ordered by ascending due date.
	ListFeeItems() ([]models.FeeItem, error)

	// MarkFeeItemPaid settles a fee item after its payment is verified.
	MarkFeeItemPaid(id string) error
}
