package domain

import "context"

// ServicePort defines the service contract for phone validation
type ServicePort interface {
	Validate(ctx context.Context, raw, defaultCountry string) Result
}
