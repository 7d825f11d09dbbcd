package dbconfig

import (
	"fmt"

	"github.com/BuzzLyutic/settings-loader/internal/model"
)

const postgresDefaultPort = 5432

type PostgresConfig struct {
	creds Credentials
	opts  Options
}

// NewPostgresConfig reads a PostgreSQL configuration from the source.
// NAME, USER, PASSWORD and HOST are required; the port defaults to 5432.
func NewPostgresConfig(src *Source, _ string) (Config, error) {
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

	cfg := &PostgresConfig{creds: creds, opts: loadOptions(src)}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *PostgresConfig) validate() error {
	switch {
	case c.creds.User == "":
		return fmt.Errorf("%w: postgresql requires a user", ErrConfiguration)
	case c.creds.Password == "":
		return fmt.Errorf("%w: postgresql requires a password", ErrConfiguration)
	case c.creds.Host == "":
		return fmt.Errorf("%w: postgresql requires a host", ErrConfiguration)
	}
	return nil
}

func (c *PostgresConfig) Engine() string           { return "postgresql" }
func (c *PostgresConfig) Credentials() Credentials { return c.creds }

func (c *PostgresConfig) Settings() model.DatabaseSettings {
	port := c.creds.Port
	if port == 0 {
		port = postgresDefaultPort
	}

	s := model.DatabaseSettings{
		Engine:         c.Engine(),
		Name:           c.creds.Name,
		User:           c.creds.User,
		Password:       c.creds.Password,
		Host:           c.creds.Host,
		Port:           port,
		TimeZone:       c.opts.TimeZone,
		AtomicRequests: c.opts.AtomicRequests,
		Autocommit:     c.opts.Autocommit,
		ConnMaxAge:     c.opts.ConnMaxAge,
		Options:        copyExtra(c.opts.Extra),
	}
	if c.opts.Charset != "" {
		s.Options["charset"] = c.opts.Charset
	}
	return s
}

func (c *PostgresConfig) ConnString() string {
	return serverConnString("postgres", c.creds, postgresDefaultPort)
}
