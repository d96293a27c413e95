// Package middleware holds adapters and in-house middlewares
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RequestID tags each request with a correlation id
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP resolves the client address from proxy headers
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// NoCache disables intermediary caching for API responses
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress applies response compression at the given flate level
func Compress(level int) func(http.Handler) http.Handler { return chimw.Compress(level) }

// Logger returns the zerolog access logger with a default slow threshold
func Logger() func(http.Handler) http.Handler {
	return AccessLogZerolog(AccessLogOptions{Slow: 2 * time.Second})
}

// CORSOptions configures the cors middleware
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS adapts go-chi/cors with permissive read-only defaults
func CORS(opt CORSOptions) func(http.Handler) http.Handler {
	if len(opt.AllowedOrigins) == 0 {
		opt.AllowedOrigins = []string{"*"}
	}
	if len(opt.AllowedMethods) == 0 {
		opt.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(opt.AllowedHeaders) == 0 {
		opt.AllowedHeaders = []string{"Accept", "Content-Type", "X-Request-ID"}
	}
	if opt.MaxAge == 0 {
		opt.MaxAge = 300
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: opt.AllowedOrigins,
		AllowedMethods: opt.AllowedMethods,
		AllowedHeaders: opt.AllowedHeaders,
		MaxAge:         opt.MaxAge,
	})
}
