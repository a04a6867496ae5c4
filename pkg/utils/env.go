package utils

import "os"

// Getenv returns the environment variable named by key, or fallback when it
// is unset or empty. The gateway's whole configuration surface (backend URL,
// session file, CORS origins, port) goes through this.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
