package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig is shared by the store guard and the account client.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Validate reports the first out of range field using the env suffix it is
// loaded from.
func (c CircuitBreakerConfig) Validate() error {
	switch {
	case c.FailureThreshold < 1:
		return fmt.Errorf("FAILURE_COUNT must be >= 1, got %d", c.FailureThreshold)
	case c.OpenTimeout <= 0:
		return fmt.Errorf("OPEN_TIMEOUT must be > 0, got %s", c.OpenTimeout)
	case c.HalfOpenMaxReq < 1:
		return fmt.Errorf("HALF_OPEN_MAX_REQ must be >= 1, got %d", c.HalfOpenMaxReq)
	}
	return nil
}

// NormalizeCircuitBreakerConfig replaces zero or negative fields with
// defaults. Enabled is left as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}
