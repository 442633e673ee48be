package middleware

import (
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"backoffice/pkg/requestcontext"
)

// ClientMetadata records the caller's IP, raw User-Agent and a short device
// label on the request context. Audit events read them from there.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua := r.Header.Get("User-Agent")
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), ua, DeviceLabel(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest extracts the real client IP from the request, handling proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For lists client, proxy1, proxy2...; the first entry is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	// RemoteAddr is "ip:port" or "[::1]:port".
	if addr := r.RemoteAddr; addr != "" {
		if idx := strings.LastIndex(addr, ":"); idx != -1 {
			return strings.Trim(addr[:idx], "[]")
		}
		return addr
	}
	return "unknown"
}

// DeviceLabel renders a User-Agent as "Browser major / OS", e.g.
// "Firefox 120 / Linux x86_64". Bots are labelled "bot".
func DeviceLabel(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return ""
	}
	parsed := useragent.New(ua)
	if parsed.Bot() {
		return "bot"
	}
	name, version := parsed.Browser()
	if major, _, _ := strings.Cut(version, "."); major != "" {
		name += " " + major
	}
	label := strings.TrimSpace(name)
	if os := parsed.OS(); os != "" {
		if label == "" {
			return os
		}
		label += " / " + os
	}
	if parsed.Mobile() {
		label += " (mobile)"
	}
	return label
}
