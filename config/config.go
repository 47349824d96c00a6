package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port    string
	GoEnv   string
	Domain  string
	Origins []string

	MongoURI      string
	MongoDatabase string
	RedisAddress  string
	RedisPassword string

	JWTSecret string

	AnthropicAPIKey string
	AnthropicModel  string

	NominatimURL      string
	GeocoderUserAgent string
	ExternalTimeout   time.Duration

	ReportRateLimit  int
	RateLimitPrefix  string
	AnalyticsLimit   int
	NearbyLimit      int
	AnalyticsTTL     time.Duration
	SnapshotSchedule string
	ImageBaseURL     string
}

func Load() *Config {
	return &Config{
		Port:    getEnv("PORT", "8080"),
		GoEnv:   getEnv("GO_ENV", "development"),
		Domain:  getEnv("DOMAIN", "localhost"),
		Origins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "civicreport"),
		RedisAddress:  getEnv("REDIS_ADDRESS", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		JWTSecret: getEnv("JWT_SECRET", ""),

		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),

		NominatimURL:      getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "civicreport-be/1.0"),
		ExternalTimeout:   getEnvSeconds("EXTERNAL_HTTP_TIMEOUT_SECONDS", 10*time.Second),

		ReportRateLimit:  getEnvInt("REPORT_RATE_LIMIT", 10),
		RateLimitPrefix:  getEnv("REDIS_QUEUE_FOR_ISSUE_LIMIT", "issue_limit"),
		AnalyticsLimit:   getEnvInt("ANALYTICS_FETCH_LIMIT", 1000),
		NearbyLimit:      getEnvInt("NEARBY_CANDIDATE_LIMIT", 1000),
		AnalyticsTTL:     getEnvSeconds("ANALYTICS_CACHE_TTL_SECONDS", 5*time.Minute),
		SnapshotSchedule: lookupEnv("ANALYTICS_SNAPSHOT_SCHEDULE", "*/15 * * * *"),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "/api/v1/issues/images"),
	}
}

func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// lookupEnv is getEnv for settings where an explicit empty value means "off".
func lookupEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvSeconds(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		log.Printf("Invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return time.Duration(n) * time.Second
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
