package database

import "testing"

func TestPostgresConfigDSN(t *testing.T) {
	cfg := PostgresConfig{Host: "db", Port: 5433, User: "bot", Password: "secret", Database: "alignment"}
	want := "host=db port=5433 user=bot password=secret dbname=alignment sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}

	cfg.SSLMode = "require"
	if got := cfg.DSN(); got[len(got)-len("sslmode=require"):] != "sslmode=require" {
		t.Fatalf("DSN() = %q", got)
	}
}
