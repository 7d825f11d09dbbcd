package dbconfig

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Source reads environment variables scoped by a prefix, so the same
// backend can be configured more than once ("DB", "REPLICA", ...).
type Source struct {
	prefix  string
	logger  *zap.Logger
	missing []string
}

func NewSource(prefix string, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{prefix: prefix, logger: logger}
}

func (s *Source) Prefix() string { return s.prefix }

func (s *Source) key(name string) string {
	return s.prefix + "_" + name
}

// Get returns the variable's value, or def when unset or blank.
func (s *Source) Get(name, def string) string {
	if v, ok := os.LookupEnv(s.key(name)); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

// Require returns the variable's value and records the full name when the
// variable is unset or blank. Missing() reports everything recorded so far.
func (s *Source) Require(name string) string {
	v, ok := os.LookupEnv(s.key(name))
	if !ok || strings.TrimSpace(v) == "" {
		s.missing = append(s.missing, s.key(name))
		return ""
	}
	return v
}

// Missing returns an error enumerating every Require miss, or nil.
func (s *Source) Missing() error {
	if len(s.missing) == 0 {
		return nil
	}
	vars := make([]string, len(s.missing))
	copy(vars, s.missing)
	return &MissingEnvError{Vars: vars}
}

// Bool parses a boolean defensively. Unrecognized values fall back to def
// with a logged warning instead of failing configuration.
func (s *Source) Bool(name string, def bool) bool {
	raw := s.Get(name, "")
	if raw == "" {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	s.logger.Warn("invalid boolean value, using default",
		zap.String("var", s.key(name)),
		zap.String("value", raw),
		zap.Bool("default", def),
	)
	return def
}

// Int parses an integer defensively, falling back to def with a warning.
func (s *Source) Int(name string, def int) int {
	raw := s.Get(name, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.logger.Warn("invalid integer value, using default",
			zap.String("var", s.key(name)),
			zap.String("value", raw),
			zap.Int("default", def),
		)
		return def
	}
	return n
}

// Port behaves like Int but also rejects values outside the TCP port range.
func (s *Source) Port(name string, def int) int {
	n := s.Int(name, def)
	if n < 0 || n > 65535 {
		s.logger.Warn("port out of range, using default",
			zap.String("var", s.key(name)),
			zap.Int("value", n),
			zap.Int("default", def),
		)
		return def
	}
	return n
}

// ExtraOptions collects every <PREFIX>_OPTIONS_* variable into a map keyed
// by the lower-cased suffix.
func (s *Source) ExtraOptions() map[string]string {
	optPrefix := s.key("OPTIONS_")
	opts := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(k, optPrefix) {
			continue
		}
		opts[strings.ToLower(strings.TrimPrefix(k, optPrefix))] = v
	}
	return opts
}
