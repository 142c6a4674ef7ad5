package api

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vr33ni-dev/gke-backend/db"
)

type Config struct {
	AppEnv      string // local | dev | prod
	Host        string // listen interface
	Port        string // listen port
	DB          db.Config
	CORSOrigins []string // comma-separated
}

// Addr is the listen address, e.g. 0.0.0.0:5000.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func LoadConfig() (*Config, error) {
	// 1) Decide env
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = "local"
	}

	// 2) Load .env.{env} (specific) then .env (common). godotenv.Load never
	// overwrites a set variable, so OS env wins, then .env.{env}, then .env.
	// Missing files are fine; in cloud there are none.
	for _, f := range []string{".env." + env, ".env"} {
		_ = godotenv.Load(f)
	}

	// 3) Read vars
	dbPort, err := parsePort(fallback(os.Getenv("DB_PORT"), "3306"))
	if err != nil {
		return nil, fmt.Errorf("DB_PORT: %w", err)
	}
	port := fallback(os.Getenv("PORT"), "5000")
	if _, err := parsePort(port); err != nil {
		return nil, fmt.Errorf("PORT: %w", err)
	}

	cfg := &Config{
		AppEnv: env,
		Host:   fallback(os.Getenv("ADDR_HOST"), "0.0.0.0"),
		Port:   port,
		DB: db.Config{
			Host:     fallback(os.Getenv("DB_HOST"), "127.0.0.1"),
			Port:     dbPort,
			User:     fallback(os.Getenv("DB_USER"), "root"),
			Password: fallback(os.Getenv("DB_PASSWORD"), "StrongPass123"),
			Name:     fallback(os.Getenv("DB_NAME"), "mysql"),
		},
		CORSOrigins: splitCSV(os.Getenv("CORS_ORIGINS")),
	}

	return cfg, nil
}

func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", s, err)
	}
	if n < 1 || n > 65535 {
		return 0, fmt.Errorf("port %d out of range", n)
	}
	return n, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
