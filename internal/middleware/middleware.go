package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCors allows the visualization front-ends to call the API from the
// browser.
func WithCors(next http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler(next)
}
