package database

import (
	"gorm.io/gorm"

	"github.com/arriendohq/arriendo/internal/domain"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Property{},
		&domain.Contract{},
		&domain.Payment{},
		&domain.MaintenanceTicket{},
		&domain.Visit{},
		&domain.LegalCase{},
		&domain.NotificationTemplate{},
	)
}
