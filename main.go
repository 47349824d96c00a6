package main

import (
	"context"
	"log"
	"time"

	"civicreport-be/analytics"
	"civicreport-be/config"
	"civicreport-be/controllers"
	"civicreport-be/routes"
	"civicreport-be/scheduler"
	"civicreport-be/services"
	"civicreport-be/store"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set, authenticated routes will reject every request")
	}

	client, db, err := config.ConnectDB(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("MongoDB disconnect: %v", err)
		}
	}()
	log.Println("MongoDB connection established successfully!")

	if err := store.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	if _, err := store.SeedAuthorities(context.Background(), db); err != nil {
		log.Printf("Authority seeding skipped: %v", err)
	}

	rdb := config.ConnectRedis(cfg.RedisAddress, cfg.RedisPassword)
	defer rdb.Close()

	mongoStore := store.NewMongoStore(db)
	imageStore := store.NewGridFSImageStore(db)
	geocoder := services.NewGeocoder(cfg.NominatimURL, cfg.GeocoderUserAgent, cfg.ExternalTimeout)
	analyticsService := services.NewAnalyticsService(mongoStore, services.NewRedisCache(rdb), cfg.AnalyticsTTL, cfg.AnalyticsLimit)

	snapshot := scheduler.NewAnalyticsSnapshot(analyticsService, analytics.Window{Days: analytics.DefaultWindowDays})
	if err := snapshot.Start(cfg.SnapshotSchedule); err != nil {
		log.Fatalf("Failed to start analytics snapshot: %v", err)
	}
	defer snapshot.Stop()

	r := routes.SetupRouter(routes.Handlers{
		Auth: controllers.NewAuthController(mongoStore, cfg.JWTSecret, controllers.CookieSettings{
			Domain:     cfg.Domain,
			Production: cfg.IsProduction(),
		}),
		Issues: controllers.NewIssueController(controllers.IssueControllerDeps{
			Issues:    mongoStore,
			Users:     mongoStore,
			Images:    imageStore,
			Reports:   services.NewReportService(mongoStore, imageStore, geocoder, cfg.ImageBaseURL),
			Nearby:    services.NewNearbyService(mongoStore, cfg.NearbyLimit),
			Analyzer:  services.NewImageAnalyzer(cfg.AnthropicAPIKey, cfg.AnthropicModel),
			Analytics: analyticsService,
		}),
		Locations: controllers.NewLocationController(geocoder),
		Analytics: controllers.NewAnalyticsController(analyticsService),
	}, routes.Options{
		Origins:         cfg.Origins,
		JWTSecret:       cfg.JWTSecret,
		Redis:           rdb,
		RateLimitPrefix: cfg.RateLimitPrefix,
		ReportRateLimit: cfg.ReportRateLimit,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
