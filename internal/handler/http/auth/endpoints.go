package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication.
// These endpoints are accessible without a valid JWT token.
//
// Justification for each public endpoint:
// - /healthz: Required for orchestration health checks
// - /metrics: Required for Prometheus scraping
// - /auth/login: Token generation endpoint (can't require a token to get one)
// - /users: Account registration must work before a user can authenticate
var PublicEndpoints = []string{
	"/healthz",
	"/metrics",
	"/auth/login",
	"/users",
}

// IsPublicEndpoint checks if a given path is a public endpoint.
//
// Matching logic:
// - Endpoints ending with '/' use prefix matching
// - Endpoints without '/' require exact match, trailing slash, or query params
//   only (e.g. /healthz matches /healthz?x=1 but not /healthz/detail)
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint {
			return true
		}
		if path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
