package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Required values halt startup when absent;
// the rest carry defaults matching the reference deployment.
type Config struct {
	Env        string // application environment (e.g. "dev", "prod")
	Port       string // HTTP port to listen on
	DBPath     string // path to the SQLite database file
	TotalSeats int    // seats seeded per train inventory
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:        must("APP_ENV"),                         // environment (dev/test/prod)
		Port:       must("APP_PORT"),                        // port to bind the HTTP server
		DBPath:     envStr("DB_PATH", "railway_system.db"),  // SQLite file location
		TotalSeats: envInt("TOTAL_SEATS", 0),                // 0 means the repository default
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
