package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"sort"
	"strconv"
	"strings"
)

// DSNValue returns the driver-specific data source name. An explicit dsn or url wins.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.URL); v != "" {
		return v
	}

	switch c.Driver {
	case DriverSQLite:
		return c.sqliteDSN()
	case DriverPostgres:
		return c.postgresDSN()
	default:
		return c.mysqlDSN()
	}
}

func (c DatabaseRuntimeConfig) mysqlDSN() string {
	port := c.Port
	if port == 0 {
		port = defaultMySQLPort
	}

	params := neturl.Values{}
	for key, value := range c.Params {
		k := strings.TrimSpace(key)
		v := strings.TrimSpace(value)
		if k != "" && v != "" {
			params.Set(k, v)
		}
	}
	if params.Get("charset") == "" {
		params.Set("charset", c.Charset)
	}
	if params.Get("parseTime") == "" {
		params.Set("parseTime", "true")
	}
	if params.Get("loc") == "" {
		params.Set("loc", c.Loc)
	}

	auth := ""
	if c.User != "" || c.Password != "" {
		auth = c.User
		if c.Password != "" {
			auth += ":" + c.Password
		}
		auth += "@"
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", auth, net.JoinHostPort(c.Host, strconv.Itoa(port)), c.Name)
	if query := params.Encode(); query != "" {
		dsn += "?" + query
	}
	return dsn
}

func (c DatabaseRuntimeConfig) postgresDSN() string {
	port := c.Port
	if port == 0 {
		port = defaultPostgresPort
	}

	parts := []string{
		"host=" + pgQuote(c.Host),
		"port=" + strconv.Itoa(port),
		"user=" + pgQuote(c.User),
	}
	if c.Password != "" {
		parts = append(parts, "password="+pgQuote(c.Password))
	}
	parts = append(parts, "dbname="+pgQuote(c.Name), "sslmode="+pgQuote(c.SSLMode))

	keys := make([]string, 0, len(c.Params))
	for key := range c.Params {
		if strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, strings.TrimSpace(key)+"="+pgQuote(strings.TrimSpace(c.Params[key])))
	}
	return strings.Join(parts, " ")
}

func (c DatabaseRuntimeConfig) sqliteDSN() string {
	path := c.Path
	if path == "" {
		path = defaultSQLitePath
	}
	if path == ":memory:" || len(c.Params) == 0 {
		return path
	}

	params := neturl.Values{}
	for key, value := range c.Params {
		params.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return "file:" + path + "?" + params.Encode()
}

// pgQuote quotes a libpq key/value when it contains spaces, quotes or backslashes.
func pgQuote(v string) string {
	if v == "" {
		return "''"
	}
	if !strings.ContainsAny(v, " '\\") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
