package dbconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration = errors.New("database configuration error")
)

// MissingEnvError reports every required environment variable that was
// missing or blank, so a single run surfaces the whole problem.
type MissingEnvError struct {
	Vars []string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.Vars, ", "))
}

func (e *MissingEnvError) Unwrap() error {
	return ErrConfiguration
}

// UnsupportedEngineError is returned for an engine identifier the factory
// does not know about.
type UnsupportedEngineError struct {
	Engine    string
	Available []string
}

func (e *UnsupportedEngineError) Error() string {
	return fmt.Sprintf("unsupported database engine %q, available engines: %s",
		e.Engine, strings.Join(e.Available, ", "))
}

func (e *UnsupportedEngineError) Unwrap() error {
	return ErrConfiguration
}
