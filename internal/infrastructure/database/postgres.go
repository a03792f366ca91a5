package database

import (
	"fmt"

	"github.com/nywele/salon-api/internal/config"
	"github.com/nywele/salon-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Account entities
		&entity.User{},

		// Salon entities
		&entity.Location{},
		&entity.Employee{},
		&entity.StaffPOSLink{},
		&entity.Client{},

		// Reporting source entities
		&entity.Appointment{},
		&entity.SaleLineItem{},
		&entity.StaffWeeklyMetric{},

		// Configuration entities
		&entity.CommissionTier{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// defaultTiers is the commission ladder seeded on first boot. Thresholds
// are period revenue; rates are fractions applied to service and product
// revenue independently.
func defaultTiers() []entity.CommissionTier {
	return []entity.CommissionTier{
		{Name: "Base", ThresholdRevenue: decimal.NewFromInt(0), ServiceRate: decimal.NewFromFloat(0.10), ProductRate: decimal.NewFromFloat(0.05), Active: true},
		{Name: "Silver", ThresholdRevenue: decimal.NewFromInt(1000), ServiceRate: decimal.NewFromFloat(0.15), ProductRate: decimal.NewFromFloat(0.08), Active: true},
		{Name: "Gold", ThresholdRevenue: decimal.NewFromInt(2500), ServiceRate: decimal.NewFromFloat(0.20), ProductRate: decimal.NewFromFloat(0.10), Active: true},
		{Name: "Platinum", ThresholdRevenue: decimal.NewFromInt(5000), ServiceRate: decimal.NewFromFloat(0.25), ProductRate: decimal.NewFromFloat(0.12), Active: true},
	}
}

// SeedDefaultData seeds the database with the default admin account and
// commission tier ladder. Existing rows are left untouched.
func SeedDefaultData(db *gorm.DB, adminEmail, adminPassword string) error {
	tiers := defaultTiers()
	for i := range tiers {
		var existing entity.CommissionTier
		if err := db.Where("name = ?", tiers[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&tiers[i]).Error; err != nil {
				return fmt.Errorf("failed to seed commission tier %s: %w", tiers[i].Name, err)
			}
		}
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		FirstName: "Salon",
		LastName:  "Admin",
		Email:     adminEmail,
		Password:  string(hashed),
		Role:      "owner",
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
