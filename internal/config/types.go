package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	LogLevel       string                `yaml:"log_level"`
	Timezone       string                `yaml:"timezone"`
	JWTSecret      string                `yaml:"jwt_secret"`
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Paths          RuntimePathsConfig    `yaml:"paths"`
	Admin          AdminConfig           `yaml:"admin"`

	// DSN is derived from Database during Load.
	DSN string `yaml:"-"`

	baseDir string
}

type DatabaseRuntimeConfig struct {
	Driver   string            `yaml:"driver"` // mysql | postgres | sqlite
	DSN      string            `yaml:"dsn"`
	URL      string            `yaml:"url"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Password string            `yaml:"password"`
	Name     string            `yaml:"name"`
	Charset  string            `yaml:"charset"`
	Loc      string            `yaml:"loc"`
	SSLMode  string            `yaml:"sslmode"`
	Path     string            `yaml:"path"` // sqlite file or ":memory:"
	Params   map[string]string `yaml:"params"`
}

type RuntimePathsConfig struct {
	Logs string `yaml:"logs"`
}

// AdminConfig configures the administrative site.
type AdminConfig struct {
	ListPerPage int           `yaml:"list_per_page"`
	SiteHeader  string        `yaml:"site_header"`
	SiteTitle   string        `yaml:"site_title"`
	IndexTitle  string        `yaml:"index_title"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
}
