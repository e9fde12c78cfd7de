package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultBackendBaseURL is the banking-support mock API every tool talks to.
const DefaultBackendBaseURL = "https://3ba4717d-1d4d-4f78-8374-9985c6db801b.mock.pstmn.io"

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		BindFlags(root.PersistentFlags())
	}
	setDefaults()
}

// BindFlags maps dashed flag names (--backend-base-url) onto the underscored
// config keys so flags, env vars and .env entries share one namespace.
func BindFlags(flags *pflag.FlagSet) {
	for _, key := range []string{KeyBackendBaseURL, KeyBackendTimeout, KeyHost, KeyPort, KeyLogLevel, KeyOTLPEndpoint} {
		if flag := flags.Lookup(strings.ReplaceAll(key, "_", "-")); flag != nil {
			_ = viper.BindPFlag(key, flag)
		}
	}
}

func setDefaults() {
	viper.SetDefault(KeyBackendBaseURL, DefaultBackendBaseURL)
	viper.SetDefault(KeyBackendTimeout, "0s")
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 3001)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyOTLPEndpoint, "")
}

func BackendBaseURL() string { return strings.TrimRight(viper.GetString(KeyBackendBaseURL), "/") }
func Host() string           { return viper.GetString(KeyHost) }
func Port() int              { return viper.GetInt(KeyPort) }
func LogLevel() string       { return viper.GetString(KeyLogLevel) }
func OTLPEndpoint() string   { return viper.GetString(KeyOTLPEndpoint) }

// BackendTimeout returns the per-request backend timeout. Zero means requests
// are never cut short.
func BackendTimeout() time.Duration {
	d := viper.GetDuration(KeyBackendTimeout)
	if d < 0 {
		return 0
	}
	return d
}
