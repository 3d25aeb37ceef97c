package config

import "os"

// Config holds the settings read from the environment at startup.
type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads configuration from the environment. DATABASE_URL and
// DATABASE_NAME are required by the store; their absence is reported when
// connecting, not here, so the /test endpoint can still describe the state.
func Load() Config {
	cfg := Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	return cfg
}
