package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartlink-edu/campus-payments/models"
)

func TestCreatePaymentAssignsIDAndTimestamps(t *testing.T) {
	s := NewMemoryStore()

	payment := &models.Payment{
		StudentName:     "Rahul Sharma",
		Amount:          500,
		Currency:        "INR",
		RazorpayOrderID: "order_1",
		Status:          models.PaymentStatusPending,
	}
	require.NoError(t, s.CreatePayment(payment))
	assert.NotEmpty(t, payment.ID)
	assert.False(t, payment.CreatedAt.IsZero())

	got, err := s.PaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, got.Status)
}

func TestPaymentByIDUnknown(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.PaymentByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletePaymentTransitionsExactlyOnce(t *testing.T) {
	s := NewMemoryStore()
	payment := &models.Payment{RazorpayOrderID: "order_1", Status: models.PaymentStatusPending}
	require.NoError(t, s.CreatePayment(payment))

	updated, err := s.CompletePayment(payment.ID, "pay_1", "sig_1")
	require.NoError(t, err)
	assert.True(t, updated)

	// Second completion is refused.
	updated, err = s.CompletePayment(payment.ID, "pay_2", "sig_2")
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := s.PaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusCompleted, got.Status)
	assert.Equal(t, "pay_1", got.RazorpayPaymentID)
	assert.Equal(t, "sig_1", got.RazorpaySignature)

	// A completed payment can no longer fail.
	updated, err = s.FailPayment(payment.ID)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestFailPaymentIsTerminal(t *testing.T) {
	s := NewMemoryStore()
	payment := &models.Payment{RazorpayOrderID: "order_1", Status: models.PaymentStatusPending}
	require.NoError(t, s.CreatePayment(payment))

	updated, err := s.FailPayment(payment.ID)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = s.CompletePayment(payment.ID, "pay_1", "sig_1")
	require.NoError(t, err)
	assert.False(t, updated)

	got, err := s.PaymentByID(payment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusFailed, got.Status)
}

func TestListPaymentsNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	base := time.Now()
	for i, id := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreatePayment(&models.Payment{
			ID:              id,
			RazorpayOrderID: "order_" + id,
			Status:          models.PaymentStatusPending,
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		}))
	}

	payments, err := s.ListPayments()
	require.NoError(t, err)
	require.Len(t, payments, 3)
	assert.Equal(t, "third", payments[0].ID)
	assert.Equal(t, "second", payments[1].ID)
	assert.Equal(t, "first", payments[2].ID)
}

func TestListFeeItemsDueDateAscending(t *testing.T) {
	s := NewMemoryStore()
	base := time.Now()
	s.AddFeeItem(models.FeeItem{ID: "late", DueDate: base.AddDate(0, 1, 0), Status: models.FeeItemStatusPending})
	s.AddFeeItem(models.FeeItem{ID: "soon", DueDate: base.AddDate(0, 0, 3), Status: models.FeeItemStatusPending})
	s.AddFeeItem(models.FeeItem{ID: "overdue", DueDate: base.AddDate(0, 0, -2), Status: models.FeeItemStatusOverdue})

	items, err := s.ListFeeItems()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "overdue", items[0].ID)
	assert.Equal(t, "soon", items[1].ID)
	assert.Equal(t, "late", items[2].ID)
}

func TestMarkFeeItemPaid(t *testing.T) {
	s := NewMemoryStore()
	s.AddFeeItem(models.FeeItem{ID: "fee_1", Status: models.FeeItemStatusPending})

	require.NoError(t, s.MarkFeeItemPaid("fee_1"))
	items, err := s.ListFeeItems()
	require.NoError(t, err)
	assert.Equal(t, models.FeeItemStatusPaid, items[0].Status)

	assert.ErrorIs(t, s.MarkFeeItemPaid("missing"), ErrNotFound)
}

func TestListPaymentsEmpty(t *testing.T) {
	s := NewMemoryStore()

	payments, err := s.ListPayments()
	require.NoError(t, err)
	assert.Empty(t, payments)

	items, err := s.ListFeeItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}
