package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartlink-edu/campus-payments/models"
)

// MemoryStore is an in-process PaymentStore used by the test suite. It keeps
// the same conditional-transition semantics as the Postgres store.
type MemoryStore struct {
	mu       sync.Mutex
	payments map[string]models.Payment
	feeItems map[string]models.FeeItem
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payments: make(map[string]models.Payment),
		feeItems: make(map[string]models.FeeItem),
	}
}

func (s *MemoryStore) CreatePayment(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}
	now := time.Now()
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = now
	}
	payment.UpdatedAt = now
	s.payments[payment.ID] = *payment
	return nil
}

func (s *MemoryStore) PaymentByID(id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &payment, nil
}

func (s *MemoryStore) ListPayments() ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]models.Payment, 0, len(s.payments))
	for _, p := range s.payments {
		payments = append(payments, p)
	}
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

func (s *MemoryStore) CompletePayment(id, razorpayPaymentID, razorpaySignature string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[id]
	if !ok || payment.Status != models.PaymentStatusPending {
		return false, nil
	}
	payment.RazorpayPaymentID = razorpayPaymentID
	payment.RazorpaySignature = razorpaySignature
	payment.Status = models.PaymentStatusCompleted
	payment.UpdatedAt = time.Now()
	s.payments[id] = payment
	return true, nil
}

func (s *MemoryStore) FailPayment(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment, ok := s.payments[id]
	if !ok || payment.Status != models.PaymentStatusPending {
		return false, nil
	}
	payment.Status = models.PaymentStatusFailed
	payment.UpdatedAt = time.Now()
	s.payments[id] = payment
	return true, nil
}

// AddFeeItem seeds a fee item for tests.
func (s *MemoryStore) AddFeeItem(item models.FeeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	s.feeItems[item.ID] = item
}

func (s *MemoryStore) ListFeeItems() ([]models.FeeItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.FeeItem, 0, len(s.feeItems))
	for _, item := range s.feeItems {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	return items, nil
}

func (s *MemoryStore) MarkFeeItemPaid(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.feeItems[id]
	if !ok {
		return ErrNotFound
	}
	item.Status = models.FeeItemStatusPaid
	item.UpdatedAt = time.Now()
	s.feeItems[id] = item
	return nil
}
