package main

import (
	"autosallon/internal/api"
	"autosallon/internal/app/service"
	"autosallon/internal/common/security"
	"autosallon/internal/domain/model"
	"autosallon/internal/domain/repository"
	"autosallon/internal/platform/cache"
	"autosallon/internal/platform/config"
	"autosallon/internal/platform/database"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	ctx := context.Background()

	// 2. Initialize Repositories (driver fixed at startup, never mixed)
	var userRepo repository.UserRepository
	var carRepo repository.CarRepository
	var contactRepo repository.ContactRepository
	var sellRequestRepo repository.SellRequestRepository

	if config.AppConfig.StorageDriver == "memory" {
		userRepo = repository.NewMemoryUserRepository()
		carRepo = repository.NewMemoryCarRepository()
		contactRepo = repository.NewMemoryContactRepository()
		sellRequestRepo = repository.NewMemorySellRequestRepository()
		fmt.Println("Using in-memory storage.")
	} else {
		database.Connect()
		defer database.Close()
		if err := database.Migrate(ctx, database.DB); err != nil {
			log.Fatalf("Schema migration failed: %v", err)
		}
		userRepo = repository.NewPgUserRepository(database.DB)
		carRepo = repository.NewPgCarRepository(database.DB)
		contactRepo = repository.NewPgContactRepository(database.DB)
		sellRequestRepo = repository.NewPgSellRequestRepository(database.DB)
	}

	// 3. Initialize Session Store
	var sessionRepo repository.SessionRepository
	if config.AppConfig.SessionBackend == "memory" {
		sessionRepo = repository.NewMemorySessionRepository(config.AppConfig.SessionTTL)
		fmt.Println("Using in-memory sessions.")
	} else {
		cache.ConnectRedis()
		defer cache.CloseRedis()
		sessionRepo = repository.NewRedisSessionRepository(cache.RDB, config.AppConfig.SessionTTL)
	}

	// 4. Seed Data
	ensureAdminExists(ctx, userRepo)
	if config.AppConfig.SeedSampleData {
		seedSampleCars(ctx, carRepo)
	}

	// 5. Initialize Services
	authService := service.NewAuthService(userRepo, sessionRepo)
	carService := service.NewCarService(carRepo)
	leadService := service.NewLeadService(contactRepo, sellRequestRepo)

	// 6. Initialize Router & HTTP Server
	router := api.NewRouter(authService, carService, leadService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 7. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}

// ensureAdminExists seeds a default admin account when the user table is
// empty, so a fresh deployment is immediately operable.
func ensureAdminExists(ctx context.Context, userRepo repository.UserRepository) {
	count, err := userRepo.Count(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashedPassword, err := security.HashPassword(config.AppConfig.DefaultAdminPassword)
	if err != nil {
		log.Printf("ERROR: Failed to hash default admin password: %v", err)
		return
	}

	admin := &model.User{
		Username:       config.AppConfig.DefaultAdminUsername,
		HashedPassword: hashedPassword,
		IsAdmin:        true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("ERROR: Failed to create default admin: %v", err)
		return
	}
	log.Printf("Created default admin account (username: %s)", admin.Username)
}

// seedSampleCars fills an empty showroom with a few listings for demos and
// local development.
func seedSampleCars(ctx context.Context, carRepo repository.CarRepository) {
	count, err := carRepo.Count(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to count cars: %v", err)
		return
	}
	if count > 0 {
		return
	}

	samples := []model.Car{
		{
			Title:       "2023 Mercedes-Benz S-Class",
			Slug:        "2023-mercedes-benz-s-class",
			Price:       125000,
			Year:        2023,
			Mileage:     15000,
			Description: "Luxury sedan with premium features and excellent condition.",
			Images:      model.ImageList{"https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800"},
			Specs: model.CarSpecs{
				Engine:       "3.0L V6 Twin-Turbo",
				Transmission: "Automatic",
				FuelType:     "Petrol",
				BodyType:     "Sedan",
				Color:        "Metallic Silver",
			},
		},
		{
			Title:       "2022 BMW X5 M",
			Slug:        "2022-bmw-x5-m",
			Price:       95000,
			Year:        2022,
			Mileage:     22000,
			Description: "High-performance SUV with M package and sport handling.",
			Images:      model.ImageList{"https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800"},
			Specs: model.CarSpecs{
				Engine:       "4.4L V8 Twin-Turbo",
				Transmission: "Automatic",
				FuelType:     "Petrol",
				BodyType:     "SUV",
				Color:        "Alpine White",
			},
		},
		{
			Title:       "2021 Audi RS e-tron GT",
			Slug:        "2021-audi-rs-e-tron-gt",
			Price:       145000,
			Year:        2021,
			Mileage:     8000,
			Description: "Electric performance sedan with stunning design and incredible acceleration.",
			Images:      model.ImageList{"https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800"},
			Specs: model.CarSpecs{
				Engine:       "Dual Electric Motors",
				Transmission: "Automatic",
				FuelType:     "Electric",
				BodyType:     "Sedan",
				Color:        "Daytona Gray",
			},
		},
	}
	for i := range samples {
		if err := carRepo.Create(ctx, &samples[i]); err != nil {
			log.Printf("ERROR: Failed to seed car %q: %v", samples[i].Title, err)
			return
		}
	}
	log.Printf("Seeded %d sample cars", len(samples))
}
