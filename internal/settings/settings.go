package settings

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Settings is the base application configuration shared by every
// environment. Values come from APP_* variables.
type Settings struct {
	SecretKey          string   `json:"-"`
	Env                string   `json:"env"`
	Debug              bool     `json:"debug"`
	Addr               string   `json:"addr"`
	BaseDir            string   `json:"base_dir"`
	AllowedHosts       []string `json:"allowed_hosts"`
	CSRFTrustedOrigins []string `json:"csrf_trusted_origins"`
	LanguageCode       string   `json:"language_code"`
	TimeZone           string   `json:"time_zone"`
	UseTZ              bool     `json:"use_tz"`
}

// RequiredVars are validated by Load; deployments append to the base set.
var RequiredVars = []string{"APP_SECRET_KEY", "APP_ENV"}

// Load reads settings from the environment. A .env file in the working
// directory is applied first when present; its absence is not an error.
func Load(baseDir string) (Settings, error) {
	_ = godotenv.Load()

	if missing := missingVars(RequiredVars); len(missing) > 0 {
		return Settings{}, fmt.Errorf("missing required environment variables: %s",
			strings.Join(missing, ", "))
	}

	env := os.Getenv("APP_ENV")
	return Settings{
		SecretKey:          os.Getenv("APP_SECRET_KEY"),
		Env:                env,
		Debug:              strings.EqualFold(env, "development"),
		Addr:               ":" + getEnv("APP_PORT", "8080"),
		BaseDir:            baseDir,
		AllowedHosts:       splitList(getEnv("APP_ALLOWED_HOSTS", "localhost,127.0.0.1")),
		CSRFTrustedOrigins: splitList(os.Getenv("APP_CSRF_TRUSTED_ORIGINS")),
		LanguageCode:       "en-us",
		TimeZone:           "UTC",
		UseTZ:              true,
	}, nil
}

var (
	once    sync.Once
	cached  Settings
	loadErr error
)

// Get returns the process-wide settings, loading them once. The base
// directory defaults to the working directory.
func Get() (Settings, error) {
	once.Do(func() {
		wd, err := os.Getwd()
		if err != nil {
			loadErr = err
			return
		}
		cached, loadErr = Load(wd)
	})
	return cached, loadErr
}

func missingVars(vars []string) []string {
	var missing []string
	for _, v := range vars {
		if strings.TrimSpace(os.Getenv(v)) == "" {
			missing = append(missing, v)
		}
	}
	return missing
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
