package domain

import "context"

// RecorderPort accepts validation outcomes without ever blocking the caller
type RecorderPort interface {
	Emit(rec Record)
}

// HistoryPort reads persisted validation outcomes
type HistoryPort interface {
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// NopRecorder discards everything; used when auditing is disabled and in tests
type NopRecorder struct{}

// Emit implements RecorderPort
func (NopRecorder) Emit(Record) {}
