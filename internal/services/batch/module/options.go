package module

import (
	"idcheck/internal/platform/config"
	batchsvc "idcheck/internal/services/batch/service"
)

// FromConfig reads with VALIDATOR_BATCH_ prefix
func FromConfig(cfg config.Conf) batchsvc.Config {
	c := cfg.Prefix("VALIDATOR_BATCH_")
	return batchsvc.Config{
		Workers: c.MayInt("WORKERS", 10),
	}
}
