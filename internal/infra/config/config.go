package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"namunjari/internal/domain/property"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env      string
	HTTPAddr string

	MongoURI string
	MongoDB  string

	KafkaBrokers     []string
	KafkaTopicPrefix string

	SyncInterval     time.Duration
	FeedFetchTimeout time.Duration
	FeedURLs         map[string]string // property id -> iCal URL

	TelegramToken   string
	TelegramChatIDs map[string]string // channel key -> chat id

	MMSAppKey    string
	MMSSecretKey string
	MMSSendNo    string

	AdminPasswordHash string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "namunjari"),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", ""),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		MMSAppKey:        os.Getenv("MMS_APP_KEY"),
		MMSSecretKey:     os.Getenv("MMS_SECRET_KEY"),
		MMSSendNo:        os.Getenv("MMS_SEND_NO"),

		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}

	interval, err := parseDurationEnv("SYNC_INTERVAL", 5*time.Minute)
	if err != nil {
		return Config{}, err
	}
	cfg.SyncInterval = interval

	fetchTimeout, err := parseDurationEnv("FEED_FETCH_TIMEOUT", 30*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.FeedFetchTimeout = fetchTimeout

	// Only properties with an external feed read a FEED_URL_* variable;
	// a URL configured for any other property is dead weight the syncer
	// would never visit.
	cfg.FeedURLs = map[string]string{}
	for _, prop := range property.SyncTargets() {
		key := "FEED_URL_" + strings.ToUpper(string(prop.ID))
		if url := os.Getenv(key); url != "" {
			cfg.FeedURLs[string(prop.ID)] = url
		}
	}

	cfg.TelegramChatIDs = map[string]string{}
	for _, prop := range property.All() {
		key := "TELEGRAM_CHAT_ID_" + strings.ToUpper(prop.ChannelKey)
		if id := os.Getenv(key); id != "" {
			cfg.TelegramChatIDs[prop.ChannelKey] = id
		}
	}
	if fallback := os.Getenv("TELEGRAM_CHAT_ID"); fallback != "" {
		cfg.TelegramChatIDs["default"] = fallback
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
