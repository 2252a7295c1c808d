package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 8000
	defaultEnv        = "development"
	defaultLogLevel   = "info"

	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	defaultDriver       = DriverMySQL
	defaultDBHost       = "127.0.0.1"
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
	defaultDBUser       = "root"
	defaultDBPassword   = "password"
	defaultDBName       = "blogicum"
	defaultDBCharset    = "utf8mb4"
	defaultDBLoc        = "Local"
	defaultSSLMode      = "disable"
	defaultSQLitePath   = "blogicum.sqlite3"

	defaultListPerPage = 10
	maxListPerPage     = 500
	defaultSiteHeader  = "Blog administration"
	defaultSiteTitle   = "Blogicum admin"
	defaultIndexTitle  = "Blog management"
	defaultTokenTTL    = 7 * 24 * time.Hour
)
