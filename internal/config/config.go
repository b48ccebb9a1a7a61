package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Environment names accepted in CURRENT_ENV.
const (
	Production  = "production"
	Testing     = "testing"
	Development = "development"
)

const (
	DefaultAPIBaseURL = "https://indigo-rhapsody-backend-ten.vercel.app"
	DefaultAPITimeout = 30 * time.Second
	DefaultAppName    = "Indigo Rhapsody Admin"
	DefaultAppVersion = "1.0.0"
)

// Lookup keys understood by ResolveEnvironment. The CLI maps each key to the
// INDIGO_<KEY> environment variable.
const (
	KeyCurrentEnv       = "current_env"
	KeyAPIBaseURLPrefix = "api_base_url_"
	KeyAPITimeout       = "api_timeout"
	KeyAppDebug         = "app_debug"
	KeyAppName          = "app_name"
	KeyAppVersion       = "app_version"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Addr          string             `yaml:"addr" validate:"required"`
	ReadTimeout   time.Duration      `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout  time.Duration      `yaml:"write_timeout" validate:"gt=0"`
	SecureCookies bool               `yaml:"secure_cookies"` // force Secure on cookies even behind a plain-HTTP proxy hop
	LogLevel      string             `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON       bool               `yaml:"log_json"`
	TemplatesDir  string             `yaml:"templates_dir"` // reload templates from disk in development
	PageSize      int                `yaml:"page_size" validate:"gt=0,lte=500"`
	ProductsLimit int                `yaml:"products_limit" validate:"gt=0"` // page size used when walking the paginated products endpoint
	LoginPerMin   float64            `yaml:"login_per_min" validate:"gt=0"`
	LoginBurst    int                `yaml:"login_burst" validate:"gt=0"`
	CORSOrigins   []string           `yaml:"cors_origins"`
	Environments  map[string]Profile `yaml:"environments"`
}

// Profile overrides the built-in defaults of one environment.
type Profile struct {
	APIBaseURL string        `yaml:"api_base_url"`
	APITimeout time.Duration `yaml:"api_timeout"`
	Debug      *bool         `yaml:"debug"`
}

type Private struct {
	SessionSecret string `yaml:"session_secret" validate:"required,min=32"`
}

// Environment is the resolved per-deployment backend configuration.
type Environment struct {
	Name       string        `validate:"oneof=production testing development"`
	APIBaseURL string        `validate:"required,url"`
	APITimeout time.Duration `validate:"gt=0"`
	Debug      bool
	AppName    string `validate:"required"`
	AppVersion string `validate:"required"`
}

func (s *Config) SessionSecret() string {
	return s.private.SessionSecret
}

func defaultPublic() Public {
	return Public{
		Addr:          ":8081",
		ReadTimeout:   5 * time.Second,
		WriteTimeout:  45 * time.Second,
		LogLevel:      "info",
		PageSize:      20,
		ProductsLimit: 100,
		LoginPerMin:   10,
		LoginBurst:    5,
	}
}

var builtinProfiles = map[string]Environment{
	Production:  {Name: Production, APIBaseURL: DefaultAPIBaseURL, APITimeout: DefaultAPITimeout},
	Testing:     {Name: Testing, APIBaseURL: DefaultAPIBaseURL, APITimeout: DefaultAPITimeout, Debug: true},
	Development: {Name: Development, APIBaseURL: "http://localhost:5000", APITimeout: DefaultAPITimeout, Debug: true},
}

func loadPath(configPath string, output any, required bool) error {
	configFile, err := os.ReadFile(configPath)
	if os.IsNotExist(err) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml (optional) and private.yaml (required) from
// configFolder, applies defaults and validates the result.
func Load(configFolder string) (*Config, error) {
	public := defaultPublic()
	if err := loadPath(path.Join(configFolder, "public.yaml"), &public, false); err != nil {
		return nil, err
	}

	var private Private
	if err := loadPath(path.Join(configFolder, "private.yaml"), &private, true); err != nil {
		return nil, err
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(public); err != nil {
		return nil, fmt.Errorf("invalid public config: %w", err)
	}
	if err := validate.Struct(private); err != nil {
		return nil, fmt.Errorf("invalid private config: %w", err)
	}

	return &Config{Public: public, private: private}, nil
}

// ResolveEnvironment picks the environment named by the current_env key,
// falling back to production, and layers built-in defaults, the YAML profile
// and lookup overrides in that order.
func (s *Config) ResolveEnvironment(lookup func(key string) string) (Environment, error) {
	var profiles map[string]Profile
	if s != nil {
		profiles = s.Public.Environments
	}
	return resolveEnvironment(profiles, lookup)
}

func resolveEnvironment(profiles map[string]Profile, lookup func(key string) string) (Environment, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}

	name := strings.ToLower(strings.TrimSpace(lookup(KeyCurrentEnv)))
	env, ok := builtinProfiles[name]
	if !ok {
		env = builtinProfiles[Production]
	}

	if p, ok := profiles[env.Name]; ok {
		if p.APIBaseURL != "" {
			env.APIBaseURL = p.APIBaseURL
		}
		if p.APITimeout > 0 {
			env.APITimeout = p.APITimeout
		}
		if p.Debug != nil {
			env.Debug = *p.Debug
		}
	}

	if v := lookup(KeyAPIBaseURLPrefix + env.Name); v != "" {
		env.APIBaseURL = v
	}
	if v := lookup(KeyAPITimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return Environment{}, fmt.Errorf("invalid %s: %w", KeyAPITimeout, err)
		}
		env.APITimeout = d
	}
	if v := lookup(KeyAppDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Environment{}, fmt.Errorf("invalid %s: %w", KeyAppDebug, err)
		}
		env.Debug = debug
	}

	env.AppName = DefaultAppName
	if v := lookup(KeyAppName); v != "" {
		env.AppName = v
	}
	env.AppVersion = DefaultAppVersion
	if v := lookup(KeyAppVersion); v != "" {
		env.AppVersion = v
	}
	env.APIBaseURL = strings.TrimRight(env.APIBaseURL, "/")

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(env); err != nil {
		return Environment{}, fmt.Errorf("invalid environment %q: %w", env.Name, err)
	}
	return env, nil
}

// parseTimeout accepts a Go duration ("30s") or a bare number of milliseconds.
func parseTimeout(v string) (time.Duration, error) {
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(v)
}
