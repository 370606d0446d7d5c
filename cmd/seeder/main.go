package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openbarangay/registry/internal/adapter"
	"github.com/openbarangay/registry/internal/config"
	"github.com/openbarangay/registry/internal/logger"
	"github.com/openbarangay/registry/internal/reference"
	"github.com/openbarangay/registry/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

// The seeder loads the geographic and occupational reference hierarchies from
// their published JSON listings. Loads are idempotent upserts, so it is safe
// to re-run on every release of the reference data.
func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSeederConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx := context.Background()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "seeder",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting reference seeder")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Run schema migrations before seeding
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}

	// Initialize store and loader
	dataStore := store.NewPGStore(db)
	loader := reference.NewLoader(dataStore, adapter.NewFileSystem(), adapter.NewJSON())

	// Load geography hierarchy
	geoCount, err := loader.LoadGeo(ctx, cfg.Seed.GeoPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load geography reference",
			zap.Error(err),
			zap.String("path", cfg.Seed.GeoPath))
	}
	logger.InfoCtx(ctx, "Loaded geography reference",
		zap.Int("nodes", geoCount),
		zap.String("path", cfg.Seed.GeoPath))

	// Load occupation hierarchy
	occupationCount, err := loader.LoadOccupation(ctx, cfg.Seed.OccupationPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load occupation reference",
			zap.Error(err),
			zap.String("path", cfg.Seed.OccupationPath))
	}
	logger.InfoCtx(ctx, "Loaded occupation reference",
		zap.Int("groups", occupationCount),
		zap.String("path", cfg.Seed.OccupationPath))

	logger.InfoCtx(ctx, "Reference seeding complete")
}
