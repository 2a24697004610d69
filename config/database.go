package config

import (
	"fmt"
	"time"

	"github.com/smartlink-edu/campus-payments/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and migrates the payment schema.
func InitDB(config *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Payment{},
		&models.FeeItem{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %v", err)
	}

	if config.SeedFeeItems {
		if err := seedFeeItems(db); err != nil {
			return nil, fmt.Errorf("failed to seed fee items: %v", err)
		}
	}

	return db, nil
}

// seedFeeItems inserts demo dues for the fees dashboard when the table is
// empty. Real deployments manage fee items from the academic office systems.
func seedFeeItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FeeItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	items := []models.FeeItem{
		{StudentName: "Rahul Sharma", FeeType: "Tuition Fee", Amount: 45000, DueDate: now.AddDate(0, 0, 14), Status: models.FeeItemStatusPending, AcademicYear: "2025-26"},
		{StudentName: "Priya Patel", FeeType: "Hostel Fee", Amount: 18000, DueDate: now.AddDate(0, 0, 7), Status: models.FeeItemStatusPending, AcademicYear: "2025-26"},
		{StudentName: "Amit Kumar", FeeType: "Lab Fee", Amount: 5500, DueDate: now.AddDate(0, 0, -3), Status: models.FeeItemStatusOverdue, AcademicYear: "2025-26"},
		{StudentName: "Sneha Singh", FeeType: "Library Fee", Amount: 1200, DueDate: now.AddDate(0, 0, 21), Status: models.FeeItemStatusPending, AcademicYear: "2025-26"},
		{StudentName: "Vikash Yadav", FeeType: "Exam Fee", Amount: 3500, DueDate: now.AddDate(0, 0, 10), Status: models.FeeItemStatusPending, AcademicYear: "2025-26"},
	}
	return db.Create(&items).Error
}
