package dbconfig

import (
	"fmt"

	"github.com/BuzzLyutic/settings-loader/internal/model"
)

// Credentials holds the connection identity for a database. Port 0 means
// unset, the backend default is applied when settings are produced.
type Credentials struct {
	Name     string
	User     string
	Password string
	Host     string
	Port     int
}

// Options are the backend-independent tuning knobs plus free-form
// <PREFIX>_OPTIONS_* extras.
type Options struct {
	Charset        string
	TimeZone       string
	AtomicRequests bool
	Autocommit     bool
	ConnMaxAge     int
	Extra          map[string]string
}

// Config is one resolved backend configuration.
type Config interface {
	// Engine is the canonical backend identifier (postgresql, mysql, sqlite).
	Engine() string
	Credentials() Credentials
	// Settings produces the settings map shape for this backend.
	Settings() model.DatabaseSettings
	// ConnString renders a DSN suitable for a driver of this backend.
	ConnString() string
}

// Builder constructs a Config from a prefixed environment source. The base
// directory anchors relative file paths for file-backed engines.
type Builder func(src *Source, baseDir string) (Config, error)

// loadOptions reads the shared option variables all backends understand.
func loadOptions(src *Source) Options {
	return Options{
		Charset:        src.Get("CHARSET", ""),
		TimeZone:       src.Get("TIMEZONE", ""),
		AtomicRequests: src.Bool("ATOMIC_REQUESTS", false),
		Autocommit:     src.Bool("AUTOCOMMIT", true),
		ConnMaxAge:     src.Int("CONN_MAX_AGE", 0),
		Extra:          src.ExtraOptions(),
	}
}

func copyExtra(extra map[string]string) map[string]string {
	out := make(map[string]string, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// serverConnString renders host/port DSNs for server-backed engines.
func serverConnString(scheme string, c Credentials, defaultPort int) string {
	port := c.Port
	if port == 0 {
		port = defaultPort
	}
	return fmt.Sprintf("%s://%s:%s@%s:%d/%s", scheme, c.User, c.Password, c.Host, port, c.Name)
}
