package dbconfig

import (
	"fmt"

	"github.com/BuzzLyutic/settings-loader/internal/model"
)

const mysqlDefaultPort = 3306

type MySQLConfig struct {
	creds Credentials
	opts  Options
}

// NewMySQLConfig reads a MySQL configuration from the source. Required
// variables mirror PostgreSQL; the port defaults to 3306.
func NewMySQLConfig(src *Source, _ string) (Config, error) {
	creds := Credentials{
		Name:     src.Require("NAME"),
		User:     src.Require("USER"),
		Password: src.Require("PASSWORD"),
		Host:     src.Require("HOST"),
		Port:     src.Port("PORT", 0),
	}
	if err := src.Missing(); err != nil {
		return nil, err
	}

	cfg := &MySQLConfig{creds: creds, opts: loadOptions(src)}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *MySQLConfig) validate() error {
	switch {
	case c.creds.User == "":
		return fmt.Errorf("%w: mysql requires a user", ErrConfiguration)
	case c.creds.Password == "":
		return fmt.Errorf("%w: mysql requires a password", ErrConfiguration)
	case c.creds.Host == "":
		return fmt.Errorf("%w: mysql requires a host", ErrConfiguration)
	}
	return nil
}

func (c *MySQLConfig) Engine() string           { return "mysql" }
func (c *MySQLConfig) Credentials() Credentials { return c.creds }

func (c *MySQLConfig) Settings() model.DatabaseSettings {
	port := c.creds.Port
	if port == 0 {
		port = mysqlDefaultPort
	}

	s := model.DatabaseSettings{
		Engine:         c.Engine(),
		Name:           c.creds.Name,
		User:           c.creds.User,
		Password:       c.creds.Password,
		Host:           c.creds.Host,
		Port:           port,
		AtomicRequests: c.opts.AtomicRequests,
		Autocommit:     c.opts.Autocommit,
		ConnMaxAge:     c.opts.ConnMaxAge,
		Options:        copyExtra(c.opts.Extra),
	}
	if c.opts.Charset != "" {
		s.Options["charset"] = c.opts.Charset
	}
	if c.opts.TimeZone != "" {
		// MySQL applies the timezone per session via an init command.
		s.Options["init_command"] = fmt.Sprintf(
			"SET sql_mode='STRICT_TRANS_TABLES'; SET time_zone='%s'", c.opts.TimeZone)
	}
	return s
}

func (c *MySQLConfig) ConnString() string {
	return serverConnString("mysql", c.creds, mysqlDefaultPort)
}
