package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT           = "3000"
	BIND_ADDRESS   = "0.0.0.0"
	TLS_DOMAINS    = "" // e.g. "example.com,example2.com"
	MYSQL_DSN      = "" // MySQL will be used if this is set
	SQLITE_FILE    = "database.sqlite"
	PUBLIC_DIR     = "./public"
	ADMIN_DIR      = "./admin"
	DEBUG_MODE     = true
	METRICS_PREFIX = "tourserver"
)

// Load reads .env (if present) and then environment variable overrides.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables only")
	}
	readEnvString("PORT", &PORT)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("PUBLIC_DIR", &PUBLIC_DIR)
	readEnvString("ADMIN_DIR", &ADMIN_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("METRICS_PREFIX", &METRICS_PREFIX)
}

// ListenAddress returns the configured bind address in host:port form.
func ListenAddress() string {
	return BIND_ADDRESS + ":" + PORT
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
