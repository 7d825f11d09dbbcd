package dbconfig

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/settings-loader/internal/model"
)

// Manager resolves and caches one configuration per environment prefix.
type Manager struct {
	baseDir string
	logger  *zap.Logger

	mu    sync.Mutex
	cache map[string]Config
}

func NewManager(baseDir string, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		baseDir: baseDir,
		logger:  logger,
		cache:   make(map[string]Config),
	}
}

// Configuration returns the configuration for the prefix, building it on
// first use. The engine comes from <PREFIX>_ENGINE; when unset, SQLite is
// assumed.
func (m *Manager) Configuration(prefix string) (Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg, ok := m.cache[prefix]; ok {
		return cfg, nil
	}

	cfg, err := m.build(prefix)
	if err != nil {
		return nil, err
	}
	m.cache[prefix] = cfg
	return cfg, nil
}

func (m *Manager) build(prefix string) (Config, error) {
	src := NewSource(prefix, m.logger)
	engine := os.Getenv(prefix + "_ENGINE")

	if engine == "" {
		m.logger.Info("no database engine specified, defaulting to sqlite",
			zap.String("prefix", prefix))
		return NewSQLiteConfig(src, m.baseDir)
	}

	cfg, err := New(engine, src, m.baseDir)
	if err != nil {
		return nil, fmt.Errorf("database configuration for prefix %s failed: %w", prefix, err)
	}
	return cfg, nil
}

// Databases assembles the alias -> settings mapping for every requested
// alias. A failing alias is logged and replaced with a SQLite fallback
// built from the same prefix; the error never propagates.
func (m *Manager) Databases(aliases map[string]string) map[string]model.DatabaseSettings {
	if aliases == nil {
		aliases = map[string]string{"default": "DB"}
	}

	out := make(map[string]model.DatabaseSettings, len(aliases))
	for alias, prefix := range aliases {
		cfg, err := m.Configuration(prefix)
		if err != nil {
			m.logger.Error("failed to configure database, falling back to sqlite",
				zap.String("alias", alias),
				zap.String("prefix", prefix),
				zap.Error(err),
			)
			fallback, ferr := NewSQLiteConfig(NewSource(prefix, m.logger), m.baseDir)
			if ferr != nil {
				m.logger.Error("sqlite fallback failed",
					zap.String("alias", alias), zap.Error(ferr))
				continue
			}
			out[alias] = fallback.Settings()
			continue
		}

		out[alias] = cfg.Settings()
		m.logger.Info("database configured",
			zap.String("alias", alias),
			zap.String("engine", cfg.Engine()),
		)
	}
	return out
}
