package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fee item statuses as shown on the fees dashboard.
const (
	FeeItemStatusPending = "pending"
	FeeItemStatusPaid    = "paid"
	FeeItemStatusOverdue = "overdue"
)

// FeeItem is an outstanding due for a student (tuition, hostel, lab, library).
// The relay reads these for the fees view and marks them paid once the
// matching payment is verified.
type FeeItem struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	StudentName  string    `json:"student_name"`
	FeeType      string    `json:"fee_type"`
	Amount       float64   `json:"amount"`
	DueDate      time.Time `json:"due_date"`
	Status       string    `json:"status"` // pending, paid, overdue
	AcademicYear string    `json:"academic_year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *FeeItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
