package database

import (
	"testing"

	"github.com/iliyamo/garage-booking/internal/config"
)

func TestDSN(t *testing.T) {
	cfg := config.Config{
		DBUser: "app", DBPass: "s3cret",
		DBHost: "db.local", DBPort: "3306", DBName: "garage",
	}
	want := "app:s3cret@tcp(db.local:3306)/garage?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := dsn(cfg); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}

func TestDSNEmptyPassword(t *testing.T) {
	cfg := config.Config{
		DBUser: "app",
		DBHost: "localhost", DBPort: "3306", DBName: "garage",
	}
	want := "app@tcp(localhost:3306)/garage?charset=utf8mb4&parseTime=true&loc=UTC"
	if got := dsn(cfg); got != want {
		t.Fatalf("dsn = %q, want %q", got, want)
	}
}
