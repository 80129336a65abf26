// Package gs1config loads decoder options from the environment or a
// JSON file, validating the file against a declared schema before it
// ever reaches gs1decode.Options.
package gs1config

import (
	"os"
	"strconv"
)

// Config holds every piece of gs1decode configuration sourced from the
// environment: decoder tuning plus the operational knobs (log level,
// metrics address) that don't belong on gs1decode.Options itself.
type Config struct {
	Decoder  DecoderConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// DecoderConfig mirrors the tunable fields of gs1decode.Options.
type DecoderConfig struct {
	CenturyPivot    int
	AllowAmbiguous  bool
	MaxAlternatives int
	BeamWidth       int
	MaxIterations   int
	VendorWhitelist []string
}

// LogConfig controls internal/obslog.
type LogConfig struct {
	Level  string
	Pretty bool
}

// MetricsConfig controls the /metrics HTTP server.
type MetricsConfig struct {
	Addr    string
	Enabled bool
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Decoder: DecoderConfig{
			CenturyPivot:    getEnvAsInt("GS1_CENTURY_PIVOT", 51),
			AllowAmbiguous:  getEnvAsBool("GS1_ALLOW_AMBIGUOUS", true),
			MaxAlternatives: getEnvAsInt("GS1_MAX_ALTERNATIVES", 5),
			BeamWidth:       getEnvAsInt("GS1_BEAM_WIDTH", 200),
			MaxIterations:   getEnvAsInt("GS1_MAX_ITERATIONS", 20),
			VendorWhitelist: getEnvAsList("GS1_VENDOR_WHITELIST", nil),
		},
		Log: LogConfig{
			Level:  getEnv("GS1_LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("GS1_LOG_PRETTY", false),
		},
		Metrics: MetricsConfig{
			Addr:    getEnv("GS1_METRICS_ADDR", ":9090"),
			Enabled: getEnvAsBool("GS1_METRICS_ENABLED", true),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	start := 0
	for i := 0; i <= len(value); i++ {
		if i == len(value) || value[i] == ',' {
			if i > start {
				out = append(out, value[start:i])
			}
			start = i + 1
		}
	}
	return out
}
