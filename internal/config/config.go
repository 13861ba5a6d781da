package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://search-test.uitdatabank.be"

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		// Flags use dashes; keys and env vars use underscores.
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyTimeout, "20s")
	viper.SetDefault(KeyRateLimit, 0.0)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyMCPEndpointPath, "/mcp")
}

func ClientID() string        { return strings.TrimSpace(viper.GetString(KeyClientID)) }
func BaseURL() string         { return strings.TrimRight(viper.GetString(KeyBaseURL), "/") }
func RateLimit() float64      { return viper.GetFloat64(KeyRateLimit) }
func LogLevel() string        { return viper.GetString(KeyLogLevel) }
func Host() string            { return viper.GetString(KeyHost) }
func Port() int               { return viper.GetInt(KeyPort) }
func MCPEndpointPath() string { return viper.GetString(KeyMCPEndpointPath) }

// Timeout returns the outbound HTTP timeout. An empty value falls back to 20s.
func Timeout() (time.Duration, error) {
	d, err := parseDuration(viper.GetString(KeyTimeout), 20*time.Second)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", KeyTimeout, err)
	}
	return d, nil
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	return time.ParseDuration(trimmed)
}
