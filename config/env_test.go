package config

import (
	"testing"
	"time"
)

func setValue(t *testing.T, key, val string) {
	t.Helper()
	_ = Load()

	mu.Lock()
	values[key] = val
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		values[key] = ""
		mu.Unlock()
	})
}

func TestDatabasePoolDefaults(t *testing.T) {
	if got := DBMaxOpenConns(); got != 25 {
		t.Errorf("DBMaxOpenConns() = %d, want 25", got)
	}
	if got := DBMaxIdleConns(); got != 10 {
		t.Errorf("DBMaxIdleConns() = %d, want 10", got)
	}
	if got := DBConnMaxLifetime(); got != 5*time.Minute {
		t.Errorf("DBConnMaxLifetime() = %v, want 5m", got)
	}
	if got := DBConnMaxIdleTime(); got != 2*time.Minute {
		t.Errorf("DBConnMaxIdleTime() = %v, want 2m", got)
	}
}

func TestDatabasePoolOverrides(t *testing.T) {
	setValue(t, "DB_MAX_OPEN_CONNS", "40")
	setValue(t, "DB_CONN_MAX_LIFETIME", "90s")

	if got := DBMaxOpenConns(); got != 40 {
		t.Errorf("DBMaxOpenConns() = %d, want 40", got)
	}
	if got := DBConnMaxLifetime(); got != 90*time.Second {
		t.Errorf("DBConnMaxLifetime() = %v, want 90s", got)
	}
}

func TestDatabasePoolIgnoresBadValues(t *testing.T) {
	setValue(t, "DB_MAX_OPEN_CONNS", "lots")
	setValue(t, "DB_MAX_IDLE_CONNS", "-4")
	setValue(t, "DB_CONN_MAX_LIFETIME", "-3m")

	if got := DBMaxOpenConns(); got != 25 {
		t.Errorf("DBMaxOpenConns() = %d, want the 25 fallback", got)
	}
	if got := DBMaxIdleConns(); got != 10 {
		t.Errorf("DBMaxIdleConns() = %d, want the 10 fallback", got)
	}
	if got := DBConnMaxLifetime(); got != 5*time.Minute {
		t.Errorf("DBConnMaxLifetime() = %v, want the 5m fallback", got)
	}
}
