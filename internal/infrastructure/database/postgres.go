package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/kapehan/pos-api/internal/config"
	"github.com/kapehan/pos-api/internal/domain/entity"
	"github.com/kapehan/pos-api/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff entities
		&entity.User{},
		&entity.PasswordResetToken{},

		// Menu entities
		&entity.MenuItem{},
		&entity.RecipeEntry{},
		&entity.AddOn{},

		// Inventory entities
		&entity.Ingredient{},
		&entity.Supplier{},
		&entity.Restock{},
		&entity.RestockDetail{},

		// Customer entities
		&entity.Customer{},

		// Transaction entities
		&entity.Checkout{},
		&entity.CheckoutItem{},
		&entity.CheckoutItemAddOn{},
		&entity.Counter{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the receipt counter and the
// initial manager account when one is configured.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Receipt numbers start at 1; the counter row must exist before the
	// first checkout commits.
	var counter entity.Counter
	if err := db.Where("name = ?", entity.CounterReceiptNo).First(&counter).Error; err != nil {
		counter = entity.Counter{Name: entity.CounterReceiptNo, Value: 0}
		if err := db.Create(&counter).Error; err != nil {
			return fmt.Errorf("failed to seed receipt counter: %w", err)
		}
	}

	managerEmail := viper.GetString("MANAGER_EMAIL")
	managerPassword := viper.GetString("MANAGER_PASSWORD")
	managerName := viper.GetString("MANAGER_NAME")

	if managerEmail != "" && managerPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", managerEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(managerPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash manager password: %v", err)
			} else {
				if managerName == "" {
					managerName = "Store Manager"
				}
				firstName := managerName
				lastName := ""
				for i, c := range managerName {
					if c == ' ' {
						firstName = managerName[:i]
						lastName = managerName[i+1:]
						break
					}
				}
				manager := entity.User{
					ID:        uuid.New(),
					FirstName: firstName,
					LastName:  lastName,
					Email:     managerEmail,
					Password:  string(hashedPassword),
					Role:      enum.StaffRoleManager,
				}
				if err := db.Create(&manager).Error; err != nil {
					log.Printf("Warning: failed to create manager user: %v", err)
				} else {
					log.Printf("Manager user created: %s", managerEmail)
				}
			}
		} else {
			log.Printf("Manager user already exists: %s", managerEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
