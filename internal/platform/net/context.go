// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const (
	keyAPIKey ctxKey = "api_key"
	keyPlan   ctxKey = "plan"
)

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, apiKey string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if apiKey != "" {
		ctx = context.WithValue(ctx, keyAPIKey, apiKey)
	}
	return ctx
}

// WithPlan annotates context with the caller's resolved plan name
func WithPlan(ctx context.Context, planName string) context.Context {
	if planName != "" {
		ctx = context.WithValue(ctx, keyPlan, planName)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// APIKey returns the caller's api key on the context if present
func APIKey(ctx context.Context) string {
	if v, ok := ctx.Value(keyAPIKey).(string); ok {
		return v
	}
	return ""
}

// PlanName returns the caller's plan name on the context if present
func PlanName(ctx context.Context) string {
	if v, ok := ctx.Value(keyPlan).(string); ok {
		return v
	}
	return ""
}
