package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/smartlink-edu/campus-payments/models"
)

// GormStore is the Postgres-backed PaymentStore.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreatePayment(payment *models.Payment) error {
	return s.db.Create(payment).Error
}

func (s *GormStore) PaymentByID(id string) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.Where("id = ?", id).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (s *GormStore) ListPayments() ([]models.Payment, error) {
	payments := []models.Payment{}
	err := s.db.Order("created_at DESC").Find(&payments).Error
	return payments, err
}

// CompletePayment only touches rows still pending, so a concurrent verify for
// the same record cannot complete it twice.
func (s *GormStore) CompletePayment(id, razorpayPaymentID, razorpaySignature string) (bool, error) {
	res := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"razorpay_payment_id": razorpayPaymentID,
			"razorpay_signature":  razorpaySignature,
			"status":              models.PaymentStatusCompleted,
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) FailPayment(id string) (bool, error) {
	res := s.db.Model(&models.Payment{}).
		Where("id = ? AND status = ?", id, models.PaymentStatusPending).
		Updates(map[string]interface{}{
			"status":     models.PaymentStatusFailed,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) ListFeeItems() ([]models.FeeItem, error) {
	items := []models.FeeItem{}
	err := s.db.Order("due_date ASC").Find(&items).Error
	return items, err
}

func (s *GormStore) MarkFeeItemPaid(id string) error {
	res := s.db.Model(&models.FeeItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     models.FeeItemStatusPaid,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
