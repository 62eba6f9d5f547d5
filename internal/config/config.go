package config

import (
	"github.com/maxviazov/country-list-service/internal/logger"
)

// Dataset sources understood by the startup loader.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Dataset  DatasetConfig       `mapstructure:"dataset"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	CORS     CORSConfig          `mapstructure:"cors"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env" validate:"oneof=dev staging prod"`
	Port    int    `mapstructure:"port" validate:"min=1,max=65535"`
}

// DatasetConfig tells the startup loader where the country names live.
type DatasetConfig struct {
	Source string `mapstructure:"source" validate:"oneof=file postgres"`
	Path   string `mapstructure:"path" validate:"required_if=Source file"`
	Table  string `mapstructure:"table" validate:"required_if=Source postgres"`
	// LoadTimeout is in seconds.
	LoadTimeout int `mapstructure:"load_timeout" validate:"min=1"`
}

// PostgresConfig is only consulted when Dataset.Source is postgres.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	MaxAge       int      `mapstructure:"max_age"`
}
