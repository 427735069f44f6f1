package db

import (
	"Gin_postgres_rental_backoffice/models"
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return conn
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Brand{}, &models.Equipment{}, &models.Rent{}, &models.Broken{}); err != nil {
		return err
	}

	// Open rents are summed on every availability read.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_open_by_equipment
	  ON %s (equipment_id)
	  WHERE status <> 'rejected' AND return_at IS NULL;
	`, models.RentTable, models.RentTable)).Error; err != nil {
		return err
	}

	// Same for pending breakage reports.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_pending_by_equipment
	  ON %s (equipment_id)
	  WHERE status = 'pending';
	`, models.BrokenTable, models.BrokenTable)).Error; err != nil {
		return err
	}

	return nil
}
