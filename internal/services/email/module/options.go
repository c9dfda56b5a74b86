package module

import (
	"time"

	"idcheck/internal/platform/config"
)

// Options controls email pipeline knobs
type Options struct {
	MXTimeout time.Duration
}

// FromConfig reads with VALIDATOR_EMAIL_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("VALIDATOR_EMAIL_")
	return Options{
		MXTimeout: c.MayDuration("MX_TIMEOUT", 3*time.Second),
	}
}
