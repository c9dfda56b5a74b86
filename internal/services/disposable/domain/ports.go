package domain

import "context"

// LookupPort answers disposable membership for the validation pipelines
type LookupPort interface {
	Contains(domain string) bool
}

// AdminPort drives refreshes and manual entries
type AdminPort interface {
	Add(domain string) error
	Refresh(ctx context.Context) (int, error)
	Stats() Stats
}

// RunnerPort is the lifecycle surface driven from main
type RunnerPort interface {
	BootstrapIfEmpty(ctx context.Context) error
	Run(ctx context.Context) error
}
