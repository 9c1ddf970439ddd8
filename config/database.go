package config

import (
	"fmt"
	model "kazrockets/repository"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var enumQueries = []string{
	`CREATE TYPE user_role AS ENUM ('PARTICIPANT', 'ORGANIZER', 'JUDGE')`,
	`CREATE TYPE submission_status AS ENUM ('PENDING', 'APPROVED', 'REJECTED')`,
}

// Uniqueness is enforced at the storage layer so concurrent registrations
// cannot slip past the service-level pre-check. The index only covers live
// rows; a soft-deleted user frees their email.
var indexQueries = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_app_users_email_active ON app_users (email) WHERE deleted_at IS NULL`,
}

func InitDB(host, port, user, password, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, Migrate(db)
}

func Migrate(db *gorm.DB) error {
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}

	err := db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Event{},
		&model.Submission{},
		&model.Evaluation{},
	)
	if err != nil {
		return err
	}

	for _, query := range indexQueries {
		x := db.Exec(query)
		if x.Error != nil {
			return x.Error
		}
	}
	return nil
}
