package db

import (
	"database/sql"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// ConnectTimeout bounds the dial to the database server. Query execution
// itself is not bounded.
const ConnectTimeout = 5 * time.Second

// Config holds the connection parameters, read once at startup.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Addr returns host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DSN builds the go-sql-driver/mysql data source name for c.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = c.Addr()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.DBName = c.Name
	mc.Timeout = ConnectTimeout
	return mc.FormatDSN()
}

// OpenFunc opens a database handle for a DSN. sql.Open does not dial.
type OpenFunc func(dsn string) (*sql.DB, error)

func openMySQL(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}
