package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/unrolled/secure"
)

// SecurityHeaders sets the standard hardening headers on every response.
// HSTS is sent regardless of scheme since TLS terminates upstream.
func SecurityHeaders(production bool) func(http.Handler) http.Handler {
	s := secure.New(secure.Options{
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'; frame-ancestors 'none'",
		STSSeconds:            15552000,
		STSIncludeSubdomains:  true,
		ForceSTSHeader:        true,
		// Development keeps STS and host checks off for plain-HTTP localhost.
		IsDevelopment: !production,
	})
	return s.Handler
}

// CORS allows browser calls from origins. An empty list allows any origin.
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"RateLimit-Limit", "RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	})
}
