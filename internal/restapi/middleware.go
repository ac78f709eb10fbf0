package restapi

import (
	"net/http"
)

// WithMiddleware wraps handler in the full chain, outermost first: request id,
// request logging, security headers, rate limiting, compression.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = api.rateLimiter.Handler(handler)
	handler = api.WithSecurityHeaders(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return RequestIDMiddleware(handler)
}
