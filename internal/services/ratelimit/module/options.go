// Package module holds wiring helpers for the rate limiter
package module

import (
	"time"

	"idcheck/internal/platform/config"
	rlsvc "idcheck/internal/services/ratelimit/service"
)

// FromConfig reads with VALIDATOR_RATELIMIT_ prefix
func FromConfig(cfg config.Conf) rlsvc.Config {
	c := cfg.Prefix("VALIDATOR_RATELIMIT_")
	return rlsvc.Config{
		Interval:   c.MayDuration("INTERVAL", time.Minute),
		SweepEvery: c.MayDuration("SWEEP_EVERY", 5*time.Minute),
		IdleAfter:  c.MayDuration("IDLE_AFTER", 30*time.Minute),
	}
}
