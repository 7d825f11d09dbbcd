package dbconfig

import (
	"sort"
	"strings"
	"sync"
)

// Framework-style engine strings normalize to the short identifiers.
var engineAliases = map[string]string{
	"django.db.backends.postgresql": "postgresql",
	"django.db.backends.mysql":      "mysql",
	"django.db.backends.sqlite3":    "sqlite",
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Builder{
		"postgresql": NewPostgresConfig,
		"postgres":   NewPostgresConfig,
		"mysql":      NewMySQLConfig,
		"sqlite":     NewSQLiteConfig,
		"sqlite3":    NewSQLiteConfig,
	}
)

// Register adds a backend builder under the given engine identifier,
// replacing any previous registration.
func Register(engine string, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(engine)] = builder
}

// Engines returns the registered engine identifiers, sorted.
func Engines() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	engines := make([]string, 0, len(registry))
	for name := range registry {
		engines = append(engines, name)
	}
	sort.Strings(engines)
	return engines
}

// Normalize lowers the identifier and resolves framework engine strings
// to their short names.
func Normalize(engine string) string {
	engine = strings.ToLower(strings.TrimSpace(engine))
	if short, ok := engineAliases[engine]; ok {
		return short
	}
	return engine
}

// New builds a configuration for the engine from the environment source.
func New(engine string, src *Source, baseDir string) (Config, error) {
	registryMu.RLock()
	builder, ok := registry[Normalize(engine)]
	registryMu.RUnlock()

	if !ok {
		return nil, &UnsupportedEngineError{Engine: engine, Available: Engines()}
	}
	return builder(src, baseDir)
}
