// cmd/api/main.go
// Main entry point for the discovery backend
// Bootstraps stores, the matching engine and the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amora-dating/amora-backend/internal/auth"
	"github.com/amora-dating/amora-backend/internal/common/database"
	"github.com/amora-dating/amora-backend/internal/config"
	"github.com/amora-dating/amora-backend/internal/directory"
	"github.com/amora-dating/amora-backend/internal/discovery"
	"github.com/amora-dating/amora-backend/internal/notify"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting Amora Discovery API")
	log.Println("========================================")

	// 1. Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found (%v), using environment variables", err)
	}

	// 2. Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}
	log.Printf("✅ Configuration loaded (env=%s, store=%s)", cfg.Environment, cfg.StoreBackend)

	// 3. Wire the backing stores
	var (
		directoryRepo directory.Repository
		prefStore     discovery.PreferenceStore
		ledger        discovery.InteractionLedger
		matchStore    discovery.MatchStore
	)

	switch cfg.StoreBackend {
	case "postgres":
		db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
		}
		defer db.Close()
		log.Println("✅ Connected to PostgreSQL")

		if err := runMigrations(db); err != nil {
			log.Fatal("❌ Failed to run migrations: ", err)
		}
		log.Println("✅ Database migrations completed")

		directoryRepo = directory.NewPostgresRepository(db)
		prefStore = discovery.NewPostgresPreferenceStore(db)
		ledger = discovery.NewPostgresInteractionLedger(db)
		matchStore = discovery.NewPostgresMatchStore(db)

	case "memory":
		log.Println("⚠️  Using in-memory stores, all data is lost on restart")
		directoryRepo = directory.NewMemoryRepository()
		prefStore = discovery.NewMemoryPreferenceStore()
		ledger = discovery.NewMemoryInteractionLedger()
		matchStore = discovery.NewMemoryMatchStore()
	}

	// 4. Connect to Redis (optional, used for event publishing)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), continuing without pub/sub events", err)
		} else {
			redisClient = client
			defer redisClient.Close()
			log.Println("✅ Connected to Redis")
		}
	}

	// 5. Notification fan-out: websocket hub always, Redis when present
	hub := notify.NewHub()
	go hub.Run()

	var notifier notify.Notifier = hub
	if redisClient != nil {
		notifier = notify.Multi(hub, notify.NewRedisPublisher(redisClient))
	}

	// 6. Initialize modules
	directoryService := directory.NewService(directoryRepo)
	directoryHandler := directory.NewHandler(directoryService)

	discoveryService := discovery.NewService(
		directoryRepo,
		prefStore,
		ledger,
		matchStore,
		notifier,
		discovery.Limits{
			DefaultLimit: cfg.DefaultCandidateLimit,
			MaxLimit:     cfg.MaxCandidateLimit,
		},
	)
	discoveryHandler := discovery.NewHandler(discoveryService)

	verifier := auth.NewVerifier(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(verifier)

	notifyHandler := notify.NewHandler(hub)

	log.Println("✅ Modules initialized")

	// 7. Seed demo data for local development
	if cfg.SeedDemoData {
		if err := seedDemoData(context.Background(), directoryService, prefStore); err != nil {
			log.Printf("⚠️  Demo data seeding failed: %v", err)
		} else {
			log.Println("✅ Demo data seeded")
		}
	}

	// 8. Setup routes
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	directory.RegisterRoutes(router, directoryHandler, authMiddleware)
	discovery.RegisterRoutes(router, discoveryHandler, authMiddleware)
	notify.RegisterRoutes(router, notifyHandler, authMiddleware)

	router.Use(loggingMiddleware)
	router.Use(corsMiddleware)

	log.Println("✅ Routes registered")

	// 9. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		log.Printf("🚀 Server listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("⚠️  Shutdown signal received...")

	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown: ", err)
	}

	log.Println("✅ Server exited gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
