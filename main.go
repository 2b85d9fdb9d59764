package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dalemartenxen/PECE-Portfolio/api"
	"github.com/dalemartenxen/PECE-Portfolio/config"
	"github.com/dalemartenxen/PECE-Portfolio/database"
	"github.com/dalemartenxen/PECE-Portfolio/storage"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	store, err := selectBackend(cfg)
	if err != nil {
		fmt.Printf("Error initializing storage backend: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Storage backend: %s\n", store.Kind())

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// selectBackend picks the storage strategy at startup. "memory" is the
// zero-setup default; "postgres" requires DATABASE_URL and fails fast
// before the server starts serving.
func selectBackend(cfg map[string]string) (storage.Store, error) {
	backend := config.GetString(cfg, "STORAGE_BACKEND", "memory")

	switch backend {
	case "memory":
		return storage.NewSeededMemoryStore(), nil

	case "postgres":
		connStr, err := config.MustGetString(cfg, "DATABASE_URL")
		if err != nil {
			return nil, err
		}

		gormLogger := logger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			logger.Config{
				SlowThreshold:             10 * time.Second,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		)

		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  connStr,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
			Logger:      gormLogger,
		})
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}

		// Test database connection
		var result int
		if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
			return nil, fmt.Errorf("testing database connection: %w", err)
		}

		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrating schema: %w", err)
		}

		return database.New(db), nil

	default:
		return nil, fmt.Errorf("unsupported STORAGE_BACKEND %q (use \"memory\" or \"postgres\")", backend)
	}
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
