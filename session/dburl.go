package session

import (
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseDatabaseURL splits protocol://server:port/database. Old-style URLs
// carried the port inside the database segment ("server/db:5432"); both
// spellings are accepted. A missing port defaults to 5432.
func ParseDatabaseURL(databaseURL string) (protocol, server, database, port string) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", "", "5432"
	}
	protocol = u.Scheme
	server = u.Hostname()
	database = strings.TrimPrefix(u.Path, "/")
	portNum := 0
	if p := u.Port(); p != "" {
		portNum, _ = strconv.Atoi(p)
	}
	if portNum <= 0 {
		if i := strings.Index(database, ":"); i >= 0 {
			portNum, _ = strconv.Atoi(database[i+1:])
			database = database[:i]
		}
	}
	if portNum <= 0 {
		portNum = 5432
	}
	return protocol, server, database, strconv.Itoa(portNum)
}

func BuildDatabaseURL(protocol, server, database, port string) string {
	return protocol + "://" + server + ":" + port + "/" + database
}

// NormalizeProtocol maps URL protocol spellings onto database/sql driver
// names. Unknown protocols pass through lower-cased for third-party
// drivers registered under their own name.
func NormalizeProtocol(protocol string) string {
	switch strings.ToLower(protocol) {
	case "psql", "pgsql", "postgres", "postgresql":
		return "postgres"
	case "sqlite", "sqlite3":
		return "sqlite3"
	case "mysql", "mariadb":
		return "mysql"
	case "odbc":
		return "odbc"
	}
	return strings.ToLower(protocol)
}

// OpenFromURL opens a database handle from a database URL. The driver
// named by the normalized protocol must be registered by the caller.
func OpenFromURL(databaseURL string) (*sql.DB, error) {
	protocol, server, database, port := ParseDatabaseURL(databaseURL)
	driver := NormalizeProtocol(protocol)
	var dsn string
	switch driver {
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%s dbname=%s", server, port, database)
	case "sqlite3":
		dsn = database
	case "mysql":
		dsn = fmt.Sprintf("tcp(%s:%s)/%s", server, port, database)
	default:
		dsn = databaseURL
	}
	return sql.Open(driver, dsn)
}
