package db

import (
	"fmt"

	"dresshub/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(databaseURL string) *gorm.DB {
	conn, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := Migrate(conn); err != nil {
		log.WithError(err).Fatal("failed to migrate models")
	}
	log.Info("database connected")
	return conn
}

func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.CartItem{},
		&models.Rental{},
		&models.ReturnRequest{},
		&models.WishlistItem{},
	); err != nil {
		return err
	}

	// open cart rows are the hot path for listing and checkout
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_user
	  ON %s (user_id)
	  WHERE checked_out = FALSE;
	`, models.CartItemTable, models.CartItemTable)).Error; err != nil {
		return err
	}

	// overlap checks at checkout scan active rentals per item
	if err := conn.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_active_by_item
	  ON %s (item_id, start_date)
	  WHERE status IN ('confirmed', 'in_use');
	`, models.RentalTable, models.RentalTable)).Error; err != nil {
		return err
	}

	return nil
}
