package main

import (
	"io"
	"strings"
	"testing"
	"time"

	"film-backend/internal/config"

	"github.com/sirupsen/logrus"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env: "dev",
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			SQLitePath:   "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared",
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			QueryTimeout: 5 * time.Second,
		},
		Catalog: config.CatalogConfig{FilmsPerPage: 10, PageSize: 10},
		Auth: config.AuthConfig{
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		},
	}
}

func TestRunReturnsStartupErrors(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "invalid configuration",
			mutate: func(c *config.Config) { c.Database.Driver = "mysql" },
			want:   "invalid configuration",
		},
		{
			name: "bootstrap admin after resources are open",
			mutate: func(c *config.Config) {
				c.Auth.AdminUsername = "admin"
				c.Auth.AdminPassword = strings.Repeat("x", 100)
			},
			want: "failed to ensure bootstrap admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			err := run(cfg, log)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}
