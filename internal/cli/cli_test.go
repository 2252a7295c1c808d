package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/database"
	"github.com/blogicum/blogicum/internal/models"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "blogicum.sqlite3")
	content := fmt.Sprintf(`env: production
log_level: warn
paths:
  logs: %s
database:
  driver: sqlite
  path: %s
`, filepath.Join(dir, "logs"), dbPath)
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path, dbPath
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestMigrateThenCreateSuperuser(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	if err := run(t, "migrate", "--config", cfgPath); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := run(t, "createsuperuser", "--config", cfgPath, "--username", "admin", "--password", "long-enough-pass"); err != nil {
		t.Fatalf("createsuperuser failed: %v", err)
	}
	if err := run(t, "createsuperuser", "--config", cfgPath, "--username", "admin", "--password", "long-enough-pass"); err == nil {
		t.Error("expected duplicate username to fail")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	db, err := database.Connect(cfg, false)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer database.Close(db)

	var u models.User
	if err := db.Where("username = ?", "admin").Take(&u).Error; err != nil {
		t.Fatalf("superuser missing: %v", err)
	}
	if !u.IsStaff || !u.IsSuperuser {
		t.Errorf("flags not set: %+v", u)
	}
}

func TestMissingConfig(t *testing.T) {
	if err := run(t, "migrate", "--config", filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for missing config")
	}
}
