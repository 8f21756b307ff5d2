package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PreciousMuemi/forest-link/internal/geo"
	"github.com/joho/godotenv"
)

// Config holds the service configuration read from the environment and an optional .env file.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// API keys for admin routes
	APIKeys []string `env:"API_KEYS"`

	// SMS gateway
	SMSGatewayURL    string        `env:"SMS_GATEWAY_URL"`
	SMSAPIKey        string        `env:"SMS_API_KEY"`
	SMSSecret        string        `env:"SMS_SECRET"`
	SMSSenderID      string        `env:"SMS_SENDER_ID" envDefault:"FORESTLINK"`
	SMSTimeout       time.Duration `env:"SMS_TIMEOUT" envDefault:"5s"`
	SMSRatePerSecond float64       `env:"SMS_RATE_PER_SECOND" envDefault:"20"`
	NotifyMaxRetries int           `env:"NOTIFY_MAX_RETRIES" envDefault:"3"`
	NotifyBaseDelay  time.Duration `env:"NOTIFY_BASE_DELAY" envDefault:"1s"`

	// Dispatch and broadcast policy
	DispatchAverageSpeedKmh float64 `env:"DISPATCH_AVERAGE_SPEED_KMH" envDefault:"40"`
	AutoDispatch            bool    `env:"AUTO_DISPATCH" envDefault:"false"`
	BroadcastMaxRadiusKm    float64 `env:"BROADCAST_MAX_RADIUS_KM" envDefault:"50"`
	BroadcastConcurrency    int     `env:"BROADCAST_CONCURRENCY" envDefault:"8"`

	// Satellite hotspots
	HotspotToleranceDeg  float64       `env:"HOTSPOT_TOLERANCE_DEG" envDefault:"0.01"`
	HotspotMinConfidence float64       `env:"HOTSPOT_MIN_CONFIDENCE" envDefault:"80"`
	HotspotWindow        time.Duration `env:"HOTSPOT_WINDOW_HOURS" envDefault:"24"`
	HotspotSyncCron      string        `env:"HOTSPOT_SYNC_CRON" envDefault:"*/30 * * * *"`
	FIRMSBaseURL         string        `env:"FIRMS_BASE_URL"`
	FIRMSMapKey          string        `env:"FIRMS_MAP_KEY"`
	FIRMSSource          string        `env:"FIRMS_SOURCE" envDefault:"VIIRS_SNPP_NRT"`
	FIRMSArea            geo.BBox      `env:"FIRMS_BBOX" envDefault:"33.9,-4.7,41.9,5.0"`
	FIRMSDays            int           `env:"FIRMS_DAYS" envDefault:"1"`

	// Event stream
	KafkaBrokers        []string `env:"KAFKA_BROKERS"`
	IncidentEventsTopic string   `env:"INCIDENT_EVENTS_TOPIC" envDefault:"incident-events"`

	// Community replies and USSD
	USSDSessionTTL   time.Duration `env:"USSD_SESSION_TTL" envDefault:"5m"`
	ResponseLookback time.Duration `env:"RESPONSE_LOOKBACK" envDefault:"72h"`

	IncidentCacheTTL time.Duration `env:"INCIDENT_CACHE_TTL" envDefault:"5m"`
}

// Kenya, west,south,east,north
var defaultFIRMSArea = geo.BBox{MinLon: 33.9, MinLat: -4.7, MaxLon: 41.9, MaxLat: 5.0}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		SMSGatewayURL:    os.Getenv("SMS_GATEWAY_URL"),
		SMSAPIKey:        os.Getenv("SMS_API_KEY"),
		SMSSecret:        os.Getenv("SMS_SECRET"),
		SMSSenderID:      getEnv("SMS_SENDER_ID", "FORESTLINK"),
		SMSTimeout:       getEnvAsDuration("SMS_TIMEOUT", 5*time.Second),
		SMSRatePerSecond: getEnvAsFloat("SMS_RATE_PER_SECOND", 20),
		NotifyMaxRetries: getEnvAsInt("NOTIFY_MAX_RETRIES", 3),
		NotifyBaseDelay:  getEnvAsDuration("NOTIFY_BASE_DELAY", time.Second),

		DispatchAverageSpeedKmh: getEnvAsFloat("DISPATCH_AVERAGE_SPEED_KMH", 40),
		AutoDispatch:            getEnvAsBool("AUTO_DISPATCH", false),
		BroadcastMaxRadiusKm:    getEnvAsFloat("BROADCAST_MAX_RADIUS_KM", 50),
		BroadcastConcurrency:    getEnvAsInt("BROADCAST_CONCURRENCY", 8),

		HotspotToleranceDeg:  getEnvAsFloat("HOTSPOT_TOLERANCE_DEG", 0.01),
		HotspotMinConfidence: getEnvAsFloat("HOTSPOT_MIN_CONFIDENCE", 80),
		HotspotWindow:        time.Duration(getEnvAsInt("HOTSPOT_WINDOW_HOURS", 24)) * time.Hour,
		HotspotSyncCron:      getEnv("HOTSPOT_SYNC_CRON", "*/30 * * * *"),
		FIRMSBaseURL:         os.Getenv("FIRMS_BASE_URL"),
		FIRMSMapKey:          os.Getenv("FIRMS_MAP_KEY"),
		FIRMSSource:          getEnv("FIRMS_SOURCE", "VIIRS_SNPP_NRT"),
		FIRMSArea:            defaultFIRMSArea,
		FIRMSDays:            getEnvAsInt("FIRMS_DAYS", 1),

		IncidentEventsTopic: getEnv("INCIDENT_EVENTS_TOPIC", "incident-events"),

		USSDSessionTTL:   getEnvAsDuration("USSD_SESSION_TTL", 5*time.Minute),
		ResponseLookback: getEnvAsDuration("RESPONSE_LOOKBACK", 72*time.Hour),
		IncidentCacheTTL: getEnvAsDuration("INCIDENT_CACHE_TTL", 5*time.Minute),
	}

	cfg.APIKeys = getEnvAsList("API_KEYS")
	cfg.KafkaBrokers = getEnvAsList("KAFKA_BROKERS")

	if raw, exists := os.LookupEnv("FIRMS_BBOX"); exists {
		area, err := parseBBox(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FIRMS_BBOX: %w", err)
		}
		cfg.FIRMSArea = area
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.BroadcastMaxRadiusKm <= 0 {
		return nil, fmt.Errorf("BROADCAST_MAX_RADIUS_KM must be positive")
	}

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the variable as int or the default when missing or malformed.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the variable as time.Duration or the default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseBBox reads "west,south,east,north", the order FIRMS uses.
func parseBBox(raw string) (geo.BBox, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return geo.BBox{}, fmt.Errorf("expected west,south,east,north, got %q", raw)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geo.BBox{}, fmt.Errorf("bad coordinate %q: %w", p, err)
		}
		v[i] = f
	}
	box := geo.BBox{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}
	if box.MinLon >= box.MaxLon || box.MinLat >= box.MaxLat {
		return geo.BBox{}, fmt.Errorf("empty box %q", raw)
	}
	return box, nil
}
