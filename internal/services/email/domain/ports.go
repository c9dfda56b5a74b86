package domain

import "context"

// MXInfo is what a mail-exchanger lookup yields
type MXInfo struct {
	Exists bool
	Host   string
	Count  int
}

// MXResolverPort answers whether a domain can receive mail.
// Lookups never error; resolution failures and timeouts read as absence
type MXResolverPort interface {
	LookupMX(ctx context.Context, domain string) MXInfo
}

// ServicePort defines the service contract for email validation
type ServicePort interface {
	Validate(ctx context.Context, raw string) Result
}
