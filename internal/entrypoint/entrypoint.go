package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/database"
	"github.com/broccoli/backend/internal/database/categories"
	"github.com/broccoli/backend/internal/database/exercises"
	"github.com/broccoli/backend/internal/database/records"
	http_controllers "github.com/broccoli/backend/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server.
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	// Close the pool only after in-flight requests have drained
	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRouter wires the repositories over db into the HTTP router.
func NewRouter(cfg *config.Config, db *database.Database, version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Categories:      categories.NewRepository(db.DB),
		Exercises:       exercises.NewRepository(db.DB),
		ExerciseRecords: records.NewRepository(db.DB),
		Database:        db,
		CORS:            cfg.CORS,
		Version:         version,
	})
}

// InitDatabase connects and creates the schema, retrying with backoff. An
// interrupt during the retries aborts it.
func InitDatabase(cfg config.Database) (*database.Database, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return database.NewInitializer(cfg).Run(ctx)
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Broccoli v%s", version)

	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	db, err := InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("Database ready (%s)", db.Dialect)

	router := NewRouter(cfg, db, version)

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	})
}
