package http

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/unrolled/secure"
)

// withSecureHeaders adds the standard hardening headers to every response.
func withSecureHeaders(next http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'; img-src 'self'; frame-ancestors 'none'",
	}).Handler(next)
}

// withCORS allows browser clients of any origin. Tokens travel in a header,
// never in cookies, so credentials are not allowed.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", h.tokenHeader, traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}
