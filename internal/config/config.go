package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string // empty: keep analyses in memory
	MQTTBroker  string // empty: no notifications
	MQTTTopic   string
	CacheSize   int
}

const (
	defaultPort      = "8080"
	defaultTopic     = "huffstat/analyses"
	defaultCacheSize = 128
)

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Port:        getenv("PORT", defaultPort),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MQTTBroker:  os.Getenv("MQTT_BROKER"),
		MQTTTopic:   getenv("MQTT_TOPIC", defaultTopic),
		CacheSize:   getenvInt("CACHE_SIZE", defaultCacheSize),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
