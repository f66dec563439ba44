package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/forecastlabs/agent-portal/internal/api"
	"github.com/forecastlabs/agent-portal/internal/config"
	"github.com/forecastlabs/agent-portal/internal/database"
	"github.com/forecastlabs/agent-portal/internal/services"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	var showVersion = flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		log.Printf("Forecast Game Agent Portal\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env file: %v", err)
	}

	cfg := config.Load()

	// Database misconfiguration is fatal at startup, not on first request
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	recorder := services.NewRecorderService(db)
	catalog := services.NewCatalogService(db)
	factory := services.NewFactoryService(db, cfg.FactoryAddress, cfg.ChainID)

	apiServer := api.NewAPIServer(cfg, recorder, catalog, factory)
	apiServer.Start(cfg.Port)
	log.Printf("API server started on port %d\n", cfg.Port)

	if cfg.FactoryAddress == "" {
		log.Println("FACTORY_ADDRESS is not set; factory and record operations will report errors")
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down server...")
	if err := apiServer.Shutdown(); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}
	log.Println("Server shut down successfully")
}

func openDatabase(cfg *config.Config) (*database.Database, error) {
	if cfg.UsePostgres() {
		dsn, err := cfg.PostgresDSN()
		if err != nil {
			return nil, err
		}
		return database.NewPostgresDatabase(dsn)
	}
	return database.NewSqliteDatabase(cfg.DBPath)
}
