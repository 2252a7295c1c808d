package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")

	content := `port: 9000
env: production
timezone: Europe/Moscow
jwt_secret: " s3cret "
allowed_origins: ["example.com", " ", "*.example.org"]
database:
  driver: mysql
  host: db.internal
  user: blog
  password: pw
  name: blog
paths:
  logs: var/log
admin:
  list_per_page: 50
  token_ttl: 12h
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("production env reported as dev")
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("Expected trimmed jwt secret, got %q", cfg.JWTSecret)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("Expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.Database.Port != defaultMySQLPort {
		t.Errorf("Expected default mysql port, got %d", cfg.Database.Port)
	}
	if !strings.HasPrefix(cfg.DSN, "blog:pw@tcp(db.internal:3306)/blog?") {
		t.Errorf("Unexpected DSN %q", cfg.DSN)
	}
	if !strings.Contains(cfg.DSN, "parseTime=true") {
		t.Errorf("DSN must enable parseTime, got %q", cfg.DSN)
	}
	if cfg.Admin.ListPerPage != 50 {
		t.Errorf("Expected list_per_page 50, got %d", cfg.Admin.ListPerPage)
	}
	if cfg.Admin.TokenTTL != 12*time.Hour {
		t.Errorf("Expected token ttl 12h, got %s", cfg.Admin.TokenTTL)
	}
	if got, want := cfg.LogDir(), filepath.Join(tmpDir, "var", "log"); got != want {
		t.Errorf("Expected log dir %q, got %q", want, got)
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Expected default port, got %d", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("Expected mysql driver, got %q", cfg.Database.Driver)
	}
	if cfg.Admin.ListPerPage != defaultListPerPage {
		t.Errorf("Expected default list_per_page, got %d", cfg.Admin.ListPerPage)
	}
	if cfg.Admin.SiteHeader == "" || cfg.Admin.SiteTitle == "" || cfg.Admin.IndexTitle == "" {
		t.Error("admin titles should have defaults")
	}
}

func TestParsePostgres(t *testing.T) {
	cfg, err := Parse([]byte(`database:
  driver: postgresql
  host: pg
  user: blog
  password: "p w"
  name: blog
  params:
    TimeZone: UTC
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Fatalf("Expected postgres driver, got %q", cfg.Database.Driver)
	}
	want := "host=pg port=5432 user=blog password='p w' dbname=blog sslmode=disable TimeZone=UTC"
	if cfg.DSN != want {
		t.Errorf("Expected DSN %q, got %q", want, cfg.DSN)
	}
}

func TestParseSQLite(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  driver: sqlite\n  path: \":memory:\"\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.DSN != ":memory:" {
		t.Errorf("Expected :memory:, got %q", cfg.DSN)
	}
}

func TestParseExplicitDSNWins(t *testing.T) {
	cfg, err := Parse([]byte("database:\n  dsn: u:p@tcp(h:1)/x\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.DSN != "u:p@tcp(h:1)/x" {
		t.Errorf("Expected explicit DSN, got %q", cfg.DSN)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "nope: 1\n",
		"bad port":      "port: 70000\n",
		"bad driver":    "database:\n  driver: oracle\n",
		"huge per page": "admin:\n  list_per_page: 100000\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(content)); err == nil {
				t.Errorf("expected error for %q", content)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}
