package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"coworking/internal/config"
	"coworking/internal/database"
	"coworking/internal/middleware"
	"coworking/internal/modules/inventory"
	"coworking/internal/modules/invoice"
	"coworking/internal/modules/maintenance"
	"coworking/internal/modules/payment"
	"coworking/internal/modules/reservation"
	"coworking/internal/modules/space"
	jwtsvc "coworking/internal/pkg/jwt"
	"coworking/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	spaceRepo := repository.NewSpaceRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	spaceService := space.NewService(spaceRepo, memberRepo)
	spaceHandler := space.NewHandler(spaceService)

	reservationService := reservation.NewService(reservationRepo, spaceRepo, memberRepo)
	reservationHandler := reservation.NewHandler(reservationService)

	invoiceService := invoice.NewService(invoiceRepo, memberRepo)
	invoiceHandler := invoice.NewHandler(invoiceService)

	paymentService := payment.NewService(paymentRepo, invoiceRepo, reservationRepo)
	paymentHandler := payment.NewHandler(paymentService)

	inventoryService := inventory.NewService(inventoryRepo)
	inventoryHandler := inventory.NewHandler(inventoryService)

	maintenanceService := maintenance.NewService(maintenanceRepo, spaceRepo)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public catalog surface
		spaceHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(tokens))
		{
			reservationHandler.RegisterRoutes(protected)
			invoiceHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			staff := protected.Group("/")
			staff.Use(middleware.RequireRole("staff", "admin"))
			{
				inventoryHandler.RegisterRoutes(staff)
				maintenanceHandler.RegisterRoutes(staff)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
