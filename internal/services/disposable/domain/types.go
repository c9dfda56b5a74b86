// Package domain holds DTOs and contracts for the disposable domain store
package domain

import "time"

// Source tags where an entry came from
type Source string

// The entry provenances
const (
	SourceFeed   Source = "FEED"
	SourceManual Source = "MANUAL"
)

// AddInput is the input for a manual entry
type AddInput struct {
	Domain string `json:"domain" validate:"required,fqdn" example:"mailinator.com"`
}

// Stats describes the current snapshot
type Stats struct {
	Total         int        `json:"total"`
	FromFeeds     int        `json:"from_feeds"`
	Manual        int        `json:"manual"`
	Feeds         []string   `json:"feeds"`
	LastRefreshAt *time.Time `json:"last_refresh_at,omitempty"`
}
