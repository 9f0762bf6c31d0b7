package main

import (
	"log"
	"os"

	"coworking/internal/database"
	"coworking/internal/domain"

	"gorm.io/gorm/clause"
)

// Seeds a local database with a small but realistic data set: enough spaces,
// members and inventory to click through every flow by hand.
func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "coworking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed:", err)
	}

	spaces := []domain.Space{
		{Name: "Hot Desk 01", Type: domain.SpaceDesk, Floor: "2", Capacity: 1,
			HourlyRateCents: 8000, DailyRateCents: 48000, MonthlyRateCents: 720000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceOperational},
		{Name: "Hot Desk 02", Type: domain.SpaceDesk, Floor: "2", Capacity: 1,
			HourlyRateCents: 8000, DailyRateCents: 48000, MonthlyRateCents: 720000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceOperational},
		{Name: "Meeting Room A", Type: domain.SpaceMeetingRoom, Floor: "3", Capacity: 8,
			HourlyRateCents: 50000, DailyRateCents: 300000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceOperational},
		{Name: "Meeting Room B", Type: domain.SpaceMeetingRoom, Floor: "3", Capacity: 4,
			HourlyRateCents: 30000, DailyRateCents: 180000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceOperational},
		{Name: "Private Office 301", Type: domain.SpaceOffice, Floor: "3", Capacity: 6,
			HourlyRateCents: 0, DailyRateCents: 400000, MonthlyRateCents: 6000000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceOperational},
		{Name: "Event Hall", Type: domain.SpaceEventSpace, Floor: "1", Capacity: 80,
			HourlyRateCents: 200000, DailyRateCents: 1200000,
			IsAvailable: true, MaintenanceStatus: domain.SpaceUnderMaintenance},
	}
	for i := range spaces {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&spaces[i]).Error; err != nil {
			log.Fatal("seed spaces:", err)
		}
	}

	members := []domain.Member{
		{Name: "Dana Mukhamedzhanova", Email: "dana@example.com", Company: "Nomad Labs",
			Status: domain.MemberActive},
		{Name: "Erik Tan", Email: "erik@example.com", Company: "Tan Consulting",
			Status: domain.MemberActive},
		{Name: "Aizhan Serik", Email: "aizhan@example.com",
			Status: domain.MemberSuspended},
	}
	for i := range members {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&members[i]).Error; err != nil {
			log.Fatal("seed members:", err)
		}
	}

	items := []domain.InventoryItem{
		{Name: "Coffee beans 1kg", SKU: "CFE-001", Quantity: 24, MinQuantity: 5,
			Unit: "bag", PurchasePriceCents: 650000, Status: domain.StockIn},
		{Name: "Printer paper A4", SKU: "PPR-A4", Quantity: 4, MinQuantity: 10,
			Unit: "ream", PurchasePriceCents: 180000, Status: domain.StockLow},
		{Name: "Whiteboard markers", SKU: "WBM-001", Quantity: 0, MinQuantity: 12,
			Unit: "box", PurchasePriceCents: 320000, Status: domain.StockOut},
	}
	for i := range items {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&items[i]).Error; err != nil {
			log.Fatal("seed inventory:", err)
		}
	}

	log.Printf("seeded %d spaces, %d members, %d inventory items", len(spaces), len(members), len(items))
}
