package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr            string
	LogLevel        string
	LogFormat       string
	SeedEnabled     bool
	ShutdownTimeout time.Duration
	Ledger          Ledger
}

// Ledger configures the Kafka fan-out of verification ledger entries.
// No brokers means fan-out is disabled.
type Ledger struct {
	Brokers []string
	Topic   string
}

func (l Ledger) Enabled() bool { return len(l.Brokers) > 0 }

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            getenv("TRADEDESK_ADDR", ":8080"),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "json"),
		SeedEnabled:     getbool("SEED_ENABLED", true),
		ShutdownTimeout: getduration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Ledger: Ledger{
			Brokers: splitList(os.Getenv("LEDGER_KAFKA_BROKERS")),
			Topic:   getenv("LEDGER_KAFKA_TOPIC", "tradedesk.verifications"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getbool falls back on unset or unparseable values.
func getbool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getduration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
