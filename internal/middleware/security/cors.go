package security

import "net/http"

// CORSConfig holds cross-origin resource sharing configuration
type CORSConfig struct {
	AllowedOrigin  string
	AllowedMethods string
	AllowedHeaders string
	MaxAge         string
}

// DefaultCORSConfig allows any origin to call the API, matching a
// single-user deployment where the frontend may be opened from anywhere.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigin:  "*",
		AllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowedHeaders: "Content-Type",
		MaxAge:         "86400",
	}
}

// CORSMiddleware answers preflight requests and stamps CORS headers on
// every response.
func CORSMiddleware(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			headers.Set("Access-Control-Allow-Origin", config.AllowedOrigin)
			headers.Set("Access-Control-Allow-Methods", config.AllowedMethods)
			headers.Set("Access-Control-Allow-Headers", config.AllowedHeaders)
			headers.Set("Access-Control-Max-Age", config.MaxAge)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
