package ch

import (
	"context"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// TestOpen builds a lazy pool without dialing
func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := Config{URL: "clickhouse://local", ClientName: "idcheck", ClientTag: "test"}
	cl, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if cl == nil {
		t.Fatalf("Open returned nil client")
	}
	_ = cl.Close()
}

// TestOpen_BadDSN surfaces the parse error
func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("Open expected error for malformed DSN")
	}
}

// fakeDriverRows satisfies driver.Rows for the adapter test
type fakeDriverRows struct {
	nexts  int
	closed bool
}

func (f *fakeDriverRows) Next() bool                       { f.nexts++; return false }
func (f *fakeDriverRows) Scan(dest ...any) error           { return nil }
func (f *fakeDriverRows) ScanStruct(dest any) error        { return nil }
func (f *fakeDriverRows) ColumnTypes() []driver.ColumnType { return nil }
func (f *fakeDriverRows) Totals(dest ...any) error         { return nil }
func (f *fakeDriverRows) Columns() []string                { return []string{"alpha", "beta"} }
func (f *fakeDriverRows) Close() error                     { f.closed = true; return nil }
func (f *fakeDriverRows) Err() error                       { return nil }

// TestNativeRows_Delegates confirms the seam passes through to driver.Rows
func TestNativeRows_Delegates(t *testing.T) {
	t.Parallel()

	f := &fakeDriverRows{}
	var rows Rows = &nativeRows{rs: f}

	if rows.Next() {
		t.Fatalf("Next should be false on fake")
	}
	if f.nexts != 1 {
		t.Fatalf("Next did not delegate")
	}

	var v int
	if err := rows.Scan(&v); err != nil {
		t.Fatalf("Scan returned error: %v", err)
	}
	if rows.Err() != nil {
		t.Fatalf("Err should be nil")
	}

	cols := rows.Columns()
	if len(cols) != 2 || cols[0] != "alpha" || cols[1] != "beta" {
		t.Fatalf("Columns mismatch: %#v", cols)
	}

	if err := rows.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if !f.closed {
		t.Fatalf("Close did not delegate")
	}
}
