// Package config carga la configuración del servicio: valores por defecto,
// archivo YAML opcional, variables de entorno (.env incluido) y flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"animal-shelter/internal/platform/tracing"
)

type Config struct {
	Port      string          `mapstructure:"port"`
	Log       LogConfig       `mapstructure:"log"`
	DB        DBConfig        `mapstructure:"db"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   tracing.Config  `mapstructure:"tracing"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
	App    string `mapstructure:"app"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

// RateLimitConfig aplica a los endpoints de adopción, por IP.
// RPS <= 0 lo desactiva.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

func Defaults() Config {
	return Config{
		Port: "8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "animal-shelter",
		},
		DB: DBConfig{
			Path: "./bbdd.db",
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Variables con nombre distinto al que sale de la clave (log.app -> LOG_APP).
var envAliases = map[string]string{
	"log.app": "APP_NAME",
}

// Flags de línea de comandos que pisan a la clave correspondiente.
var flagKeys = map[string]string{
	"port":      "port",
	"db-driver": "db.driver",
	"db-path":   "db.path",
	"db-dsn":    "db.dsn",
	"log-level": "log.level",
}

type LoadOptions struct {
	// ConfigFile es un YAML opcional; vacío = solo defaults + entorno.
	ConfigFile string
	// EnvFile se carga con godotenv si existe (por defecto ".env").
	EnvFile string
	Flags   *pflag.FlagSet
}

func Load(opts LoadOptions) (Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// godotenv no pisa variables ya definidas
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.normalize()
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("port", d.Port)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.app", d.Log.App)

	v.SetDefault("db.driver", d.DB.Driver)
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("db.dsn", d.DB.DSN)

	v.SetDefault("rate_limit.rps", d.RateLimit.RPS)
	v.SetDefault("rate_limit.burst", d.RateLimit.Burst)

	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// normalize: un DSN sin driver explícito significa Postgres.
func (c *Config) normalize() {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	if c.DB.Driver == "" {
		c.DB.Driver = "sqlite"
		if strings.TrimSpace(c.DB.DSN) != "" {
			c.DB.Driver = "postgres"
		}
	}
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite":
		if strings.TrimSpace(c.DB.Path) == "" {
			return errors.New("db.path is required for sqlite")
		}
	case "postgres", "pgx":
		if strings.TrimSpace(c.DB.DSN) == "" {
			return errors.New("db.dsn is required for postgres")
		}
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return errors.New("rate_limit.burst must be >= 1")
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string { return ":" + c.Port }
