package module

import (
	"time"

	"idcheck/internal/platform/config"
	disposablesvc "idcheck/internal/services/disposable/service"
)

// FromConfig reads with VALIDATOR_DISPOSABLE_ prefix
func FromConfig(cfg config.Conf) disposablesvc.Config {
	c := cfg.Prefix("VALIDATOR_DISPOSABLE_")
	return disposablesvc.Config{
		Feeds:        c.MayCSV("FEEDS", nil),
		FetchTimeout: c.MayDuration("FETCH_TIMEOUT", 10*time.Second),
		RefreshEvery: c.MayDuration("REFRESH_EVERY", 6*time.Hour),
	}
}
