package dbconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BuzzLyutic/settings-loader/internal/model"
)

const sqliteDefaultName = "db.sqlite3"

type SQLiteConfig struct {
	path string
	opts Options
}

// NewSQLiteConfig reads a SQLite configuration. The database name defaults
// to db.sqlite3 and relative names resolve against baseDir. The parent
// directory is created when absent.
func NewSQLiteConfig(src *Source, baseDir string) (Config, error) {
	name := src.Get("NAME", sqliteDefaultName)
	if baseDir != "" && !filepath.IsAbs(name) {
		name = filepath.Join(baseDir, name)
	}

	if dir := filepath.Dir(name); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: cannot create directory for sqlite database: %v", ErrConfiguration, err)
		}
	}

	return &SQLiteConfig{path: name, opts: loadOptions(src)}, nil
}

func (c *SQLiteConfig) Engine() string { return "sqlite" }

func (c *SQLiteConfig) Credentials() Credentials {
	return Credentials{Name: c.path}
}

func (c *SQLiteConfig) Settings() model.DatabaseSettings {
	return model.DatabaseSettings{
		Engine:         c.Engine(),
		Name:           c.path,
		AtomicRequests: c.opts.AtomicRequests,
		Autocommit:     c.opts.Autocommit,
		ConnMaxAge:     c.opts.ConnMaxAge,
		Options:        copyExtra(c.opts.Extra),
	}
}

func (c *SQLiteConfig) ConnString() string {
	return "file:" + c.path
}
