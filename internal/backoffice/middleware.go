package backoffice

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/rigorous-io/swit-backoffice/internal/platform/observability"
)

const headerAuthorization = "Authorization"

// authMiddleware enforces the configured bearer token. A stand-in for the
// upstream client authorization; disabled when no token is configured.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.cfg.APIToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(r.Header.Get(headerAuthorization), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.APIToken)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware applies a per-IP token bucket to the dashboard
// endpoints.
func (h *Handler) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.allowRequest(getClientIP(r)) {
			observability.RateLimitedRequests.Inc()
			writeError(w, http.StatusTooManyRequests, "too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) allowRequest(clientIP string) bool {
	h.limitersMu.Lock()
	defer h.limitersMu.Unlock()

	limiter, ok := h.limiters[clientIP]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.cfg.RateLimitRPS), h.cfg.RateLimitBurst)
		h.limiters[clientIP] = limiter
	}

	return limiter.Allow()
}

// getClientIP extracts the client IP, honoring X-Forwarded-For set by the
// reverse proxy in front of the service.
func getClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
