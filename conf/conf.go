package conf

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything the back office needs to reach its providers.
// Values come from a TOML file, each overridable through the environment.
type Config struct {
	ListenAddr string `toml:"listen_addr"`

	AwsRegion  string `toml:"aws_region"`
	SubmTable  string `toml:"submissions_table"`
	UserTable  string `toml:"users_table"`
	DocsBucket string `toml:"documents_bucket"`
	EventQueue string `toml:"event_queue_url"` // optional, empty disables events

	CorsOrigins []string `toml:"cors_origins"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr: ":8080",
		AwsRegion:  "ap-southeast-1",
		SubmTable:  "jamaah_submissions",
		UserTable:  "backoffice_users",
		DocsBucket: "samira-travel-documents",
		CorsOrigins: []string{
			"http://localhost:3000",
		},
	}
}

// Load reads the config file named by BACKOFFICE_CONFIG (default
// backoffice.toml) and applies environment overrides on top. A missing
// file is fine; the defaults plus env are enough for local dev.
func Load() (Config, error) {
	cfg := defaultConfig()

	path := os.Getenv("BACKOFFICE_CONFIG")
	if path == "" {
		path = "backoffice.toml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	overrideFromEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	overrideFromEnv(&cfg.AwsRegion, "AWS_REGION")
	overrideFromEnv(&cfg.SubmTable, "SUBMISSIONS_TABLE")
	overrideFromEnv(&cfg.UserTable, "USERS_TABLE")
	overrideFromEnv(&cfg.DocsBucket, "DOCUMENTS_BUCKET")
	overrideFromEnv(&cfg.EventQueue, "EVENT_QUEUE_URL")

	return cfg, nil
}

// JwtKeyFromEnv reads the signing key. It is deliberately env-only so the
// secret never ends up in a config file that gets committed.
func JwtKeyFromEnv() ([]byte, error) {
	key := os.Getenv("JWT_KEY")
	if key == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}
	return []byte(key), nil
}

func overrideFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}
