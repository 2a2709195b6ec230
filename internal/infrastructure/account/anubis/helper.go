package anubis

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/turf-matchmaking/internal/usecase"
)

// transient marks a failure that should count against the breaker and
// surface as an unavailable dependency.
func transient(err error) error {
	return crerr.Mark(fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err), errAnubisTransient)
}

func isCircuitFailure(err error) bool {
	return crerr.Is(err, errAnubisTransient)
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
