package model

// DatabaseSettings is the fully resolved configuration for one database
// alias, shaped for consumption by an application settings module.
type DatabaseSettings struct {
	Engine         string            `json:"engine"`
	Name           string            `json:"name"`
	User           string            `json:"user,omitempty"`
	Password       string            `json:"password,omitempty"`
	Host           string            `json:"host,omitempty"`
	Port           int               `json:"port,omitempty"`
	TimeZone       string            `json:"time_zone,omitempty"`
	AtomicRequests bool              `json:"atomic_requests"`
	Autocommit     bool              `json:"autocommit"`
	ConnMaxAge     int               `json:"conn_max_age"`
	Options        map[string]string `json:"options"`
}

// Redacted returns a copy safe to expose over HTTP or in logs.
func (s DatabaseSettings) Redacted() DatabaseSettings {
	out := s
	if out.Password != "" {
		out.Password = "********"
	}
	out.Options = make(map[string]string, len(s.Options))
	for k, v := range s.Options {
		out.Options[k] = v
	}
	return out
}

// CheckResult is the outcome of a connectivity check for one alias.
type CheckResult struct {
	Alias   string `json:"alias"`
	Engine  string `json:"engine"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}
