package service

import (
	"context"
	"net"
	"strings"
	"time"

	"idcheck/internal/services/email/domain"
)

// Resolver implements domain.MXResolverPort on the system resolver.
// Every failure mode (NXDOMAIN, timeout, empty answer) reads as absence;
// deliverability checks must never turn resolver hiccups into 5xx responses
type Resolver struct {
	r       *net.Resolver
	timeout time.Duration
}

// NewResolver builds a resolver with a bounded per-lookup timeout
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Resolver{r: net.DefaultResolver, timeout: timeout}
}

// LookupMX implements domain.MXResolverPort
func (l *Resolver) LookupMX(ctx context.Context, dom string) domain.MXInfo {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	recs, err := l.r.LookupMX(ctx, dom)
	if err != nil || len(recs) == 0 {
		return domain.MXInfo{}
	}

	// records arrive sorted by preference
	return domain.MXInfo{
		Exists: true,
		Host:   strings.TrimSuffix(recs[0].Host, "."),
		Count:  len(recs),
	}
}
