package http

import (
	"fmt"
	"net/http"
	"strings"
)

// GetFrontendURL returns the dashboard URL based on configuration and request
// configuredURL: URL configured via environment variable or configuration
// If configuredURL is empty, dynamically constructs URL from request headers
func GetFrontendURL(r *http.Request, configuredURL string) string {
	// If explicitly configured, use that URL
	if configuredURL != "" {
		return strings.TrimRight(configuredURL, "/")
	}

	scheme := "http"
	if isSecureRequest(r) {
		scheme = "https"
	}

	// Determine host from headers
	// Priority: Alt-Used (Cloud Run) > X-Forwarded-Host > Host
	host := r.Host
	if altUsed := r.Header.Get("Alt-Used"); altUsed != "" {
		host = altUsed
	} else if forwardedHost := r.Header.Get("X-Forwarded-Host"); forwardedHost != "" {
		// X-Forwarded-Host may contain multiple hosts separated by comma
		// Use the first one (original client request)
		if parts := strings.Split(forwardedHost, ","); len(parts) > 0 {
			host = strings.TrimSpace(parts[0])
		}
	}

	// Fallback to localhost if no host header
	if host == "" {
		host = "localhost"
	}

	return fmt.Sprintf("%s://%s", scheme, host)
}

// isSecureRequest reports whether the client reached us over TLS, either
// directly or through a TLS terminating proxy
func isSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	proto := r.Header.Get("X-Forwarded-Proto")
	if parts := strings.Split(proto, ","); len(parts) > 0 {
		proto = strings.TrimSpace(parts[0])
	}
	return strings.EqualFold(proto, "https")
}
