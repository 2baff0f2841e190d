package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studiobooking/internal/config"
	"studiobooking/internal/database"
	"studiobooking/internal/domain"
	"studiobooking/internal/middleware"
	"studiobooking/internal/modules/booking"
	"studiobooking/internal/modules/payment"
	"studiobooking/internal/modules/pricing"
	"studiobooking/internal/modules/schedule"
	"studiobooking/internal/modules/settings"
	jwtsvc "studiobooking/internal/pkg/jwt"
	"studiobooking/internal/pkg/lock"
	"studiobooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadBookingRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.StudioSettings{},
		&domain.BlockedSlot{},
		&domain.Formula{},
		&domain.PromoCode{},
		&domain.HourPack{},
		&domain.Reservation{},
		&domain.PaymentIntent{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := database.EnsureOverlapConstraint(db); err != nil {
		log.Fatalf("overlap constraint failed: %v", err)
	}

	settingsRepo := repository.NewSettingsRepository(db)
	blockRepo := repository.NewBlockedSlotRepository(db)
	formulaRepo := repository.NewFormulaRepository(db)
	promoRepo := repository.NewPromoCodeRepository(db)
	packRepo := repository.NewHourPackRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	intentRepo := repository.NewPaymentIntentRepository(db)

	if err := formulaRepo.SeedDefaults(context.Background()); err != nil {
		log.Fatalf("formula seed failed: %v", err)
	}

	var locker lock.Locker
	if cfg.RedisAddr != "" {
		locker, err = lock.NewRedisLocker(cfg.RedisAddr)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		locker = lock.NewMutexLocker()
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	scheduleService := schedule.NewService(blockRepo, settingsService)
	scheduleHandler := schedule.NewHandler(scheduleService)

	pricingService := pricing.NewService(formulaRepo, packRepo, promoRepo, settingsService)
	pricingHandler := pricing.NewHandler(pricingService)

	ledger := booking.NewLedger(reservationRepo, locker, cfg.PendingRetention, cfg.LockTTL)
	bookingService := booking.NewService(ledger, reservationRepo, scheduleService, pricingService, packRepo, cfg.PendingRetention)
	bookingHandler := booking.NewHandler(bookingService, cfg.RequestTimeout)

	paymentService := payment.NewService(intentRepo, bookingService, payment.NewLocalProvider(), cfg.Currency)
	paymentHandler := payment.NewHandler(paymentService)
	bookingService.SetPaymentIntents(paymentService)

	reclaimer := booking.NewReclaimer(reservationRepo, cfg.PendingRetention, cfg.SweepInterval)
	go reclaimer.Run(context.Background())

	r := gin.Default()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		settingsHandler.RegisterRoutes(v1)
		pricingHandler.RegisterRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		paymentHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.RequireAuth(j), middleware.AdminOnly())
		{
			settingsHandler.RegisterAdminRoutes(admin)
			scheduleHandler.RegisterAdminRoutes(admin)
			pricingHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
		}
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
