package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at configPath, applies defaults and validates ranges.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("config file %q: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		cfg.baseDir = filepath.Dir(abs)
	}
	return cfg, nil
}

// Parse decodes raw YAML into an AppConfig. Unknown keys are rejected.
func Parse(content []byte) (*AppConfig, error) {
	cfg := Default()
	if len(bytes.TrimSpace(content)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.DSN = cfg.Database.DSNValue()
	return cfg, nil
}

// Default returns the configuration used when a key is absent.
func Default() *AppConfig {
	return &AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		LogLevel: defaultLogLevel,
		Database: DatabaseRuntimeConfig{
			Driver:   defaultDriver,
			Host:     defaultDBHost,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
			Loc:      defaultDBLoc,
		},
		Admin: AdminConfig{
			ListPerPage: defaultListPerPage,
			SiteHeader:  defaultSiteHeader,
			SiteTitle:   defaultSiteTitle,
			IndexTitle:  defaultIndexTitle,
			TokenTTL:    defaultTokenTTL,
		},
	}
}

func (c *AppConfig) normalize() {
	c.Env = normalizeEnv(c.Env)
	c.LogLevel = normalizeLogLevel(c.LogLevel)
	c.Timezone = strings.TrimSpace(c.Timezone)
	c.JWTSecret = strings.TrimSpace(c.JWTSecret)
	c.AllowedOrigins = normalizeOrigins(c.AllowedOrigins)
	c.Database = normalizeDatabaseConfig(c.Database)
	c.Paths = normalizeRuntimePaths(c.Paths)
	c.Admin = normalizeAdminConfig(c.Admin)
}

func (c *AppConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("invalid database.driver %q, expected mysql, postgres or sqlite", c.Database.Driver)
	}
	if c.Database.Driver != DriverSQLite && (c.Database.Port < 1 || c.Database.Port > 65535) {
		return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
	}
	if c.Admin.ListPerPage > maxListPerPage {
		return fmt.Errorf("invalid admin.list_per_page %d, expected at most %d", c.Admin.ListPerPage, maxListPerPage)
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}

func (c *AppConfig) LogDir() string {
	if c == nil {
		return ResolveRuntimePath("", "", "logs")
	}
	return ResolveRuntimePath(c.baseDir, c.Paths.Logs, "logs")
}
