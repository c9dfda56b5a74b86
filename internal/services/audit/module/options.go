package module

import (
	"time"

	"idcheck/internal/platform/config"
	auditsvc "idcheck/internal/services/audit/service"
)

// FromConfig reads with VALIDATOR_AUDIT_ prefix
func FromConfig(cfg config.Conf) auditsvc.Config {
	c := cfg.Prefix("VALIDATOR_AUDIT_")
	return auditsvc.Config{
		QueueSize:  c.MayInt("QUEUE_SIZE", 1024),
		FlushBatch: c.MayInt("FLUSH_BATCH", 64),
		FlushEvery: c.MayDuration("FLUSH_EVERY", 2*time.Second),
	}
}
