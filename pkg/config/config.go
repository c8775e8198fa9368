package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "THREADLINE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "THREADLINE_DB_DSN"
	EnvDBHost = "THREADLINE_DB_HOST"
	EnvDBUser = "THREADLINE_DB_USER"
	EnvDBName = "THREADLINE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	Service      ServiceConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	FeatureFlags FeatureFlagsConfig
	Cron         CronConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"THREADLINE_APP_ENV" required:"true"`
	Port         string `envconfig:"THREADLINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"THREADLINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"THREADLINE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServiceConfig struct {
	Kind string `envconfig:"THREADLINE_SERVICE_KIND" default:"api"`
}

type DBConfig struct {
	DSN    string `envconfig:"THREADLINE_DB_DSN"`
	Driver string `envconfig:"THREADLINE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"THREADLINE_DB_HOST"`
	LegacyPort     int    `envconfig:"THREADLINE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"THREADLINE_DB_USER"`
	LegacyPassword string `envconfig:"THREADLINE_DB_PASSWORD"`
	LegacyName     string `envconfig:"THREADLINE_DB_NAME"`
	LegacySSLMode  string `envconfig:"THREADLINE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"THREADLINE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"THREADLINE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"THREADLINE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"THREADLINE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"THREADLINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"THREADLINE_REDIS_ADDR"`
	Password     string        `envconfig:"THREADLINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"THREADLINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"THREADLINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"THREADLINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"THREADLINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"THREADLINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"THREADLINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"THREADLINE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"THREADLINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"THREADLINE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"THREADLINE_AUTO_MIGRATE" default:"false"`
}

type CronConfig struct {
	Interval time.Duration `envconfig:"THREADLINE_CRON_INTERVAL" default:"5m"`
	LockTTL  time.Duration `envconfig:"THREADLINE_CRON_LOCK_TTL" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required when the sqlite driver is selected", EnvDBDSN)
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
