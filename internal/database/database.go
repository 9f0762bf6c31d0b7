package database

import (
	"log"
	"strings"

	"coworking/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" database/sql driver
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}

	// A single connection keeps an in-memory database shared across the pool
	// and serializes writers, which FOR UPDATE would otherwise do on postgres.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// Migrate creates the schema plus the partial unique index that backstops
// double-booking at the storage level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Space{},
		&domain.Member{},
		&domain.Reservation{},
		&domain.Invoice{},
		&domain.InvoiceItem{},
		&domain.Payment{},
		&domain.InventoryItem{},
		&domain.StockMovement{},
		&domain.MaintenanceRequest{},
	); err != nil {
		return err
	}

	// SQLite and PostgreSQL both accept this partial index form. Identical
	// intervals on the same space collide here even if the overlap check
	// raced; partial overlaps rely on the locked availability check.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_no_double_booking
		ON reservations (space_id, start_time, end_time)
		WHERE status IN ('pending', 'confirmed')`).Error
}
