package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "MINEFIELD"

type App struct {
	Addr           string
	BasePath       string
	Development    bool
	SessionTTL     time.Duration
	SweepInterval  time.Duration
	TokenSecret    string
	TokenLifetime  time.Duration
	AllowedOrigins []string
}

// Development reports whether the DEVELOPMENT env variable is set to
// anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file path")
	flags.String("addr", ":8080", "address to listen on")
	flags.String("base-path", "", "path prefix of every route")
	flags.Bool("development", Development(), "development mode")
	flags.Duration("session-ttl", 30*time.Minute, "idle time before a session is dropped")
	flags.Duration("sweep-interval", time.Minute, "how often idle sessions are looked for")
	flags.String("token-secret", "", "HMAC secret for session tokens")
	flags.Duration("token-lifetime", 24*time.Hour, "session token lifetime")
	flags.StringSlice("allowed-origins", nil, "CORS origins, any origin if empty")
	return flags
}

// Load merges flags, MINEFIELD_* env variables and an optional config file,
// in that order of precedence.
func Load(flags *pflag.FlagSet) (*App, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("unable to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	cfg := &App{
		Addr:           v.GetString("addr"),
		BasePath:       strings.TrimSuffix(v.GetString("base-path"), "/"),
		Development:    v.GetBool("development"),
		SessionTTL:     v.GetDuration("session-ttl"),
		SweepInterval:  v.GetDuration("sweep-interval"),
		TokenSecret:    v.GetString("token-secret"),
		TokenLifetime:  v.GetDuration("token-lifetime"),
		AllowedOrigins: v.GetStringSlice("allowed-origins"),
	}

	if cfg.SessionTTL <= 0 || cfg.SweepInterval <= 0 || cfg.TokenLifetime <= 0 {
		return nil, fmt.Errorf("session-ttl, sweep-interval and token-lifetime must be positive")
	}

	if cfg.TokenSecret == "" {
		if !cfg.Development {
			return nil, fmt.Errorf("no token secret set; use --token-secret or %s_TOKEN_SECRET", envPrefix)
		}
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.TokenSecret = secret
	}

	return cfg, nil
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("unable to generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
