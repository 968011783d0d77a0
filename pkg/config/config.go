package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	CORS          CORSConfig
	Audit         AuditConfig
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
	Env          string `envconfig:"STOCKSIGHT_APP_ENV" required:"true"`
	Port         string `envconfig:"STOCKSIGHT_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"STOCKSIGHT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKSIGHT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"STOCKSIGHT_DB_DSN"`

	Host     string `envconfig:"STOCKSIGHT_DB_HOST"`
	Port     int    `envconfig:"STOCKSIGHT_DB_PORT" default:"5432"`
	User     string `envconfig:"STOCKSIGHT_DB_USER"`
	Password string `envconfig:"STOCKSIGHT_DB_PASSWORD"`
	Name     string `envconfig:"STOCKSIGHT_DB_NAME"`
	SSLMode  string `envconfig:"STOCKSIGHT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOCKSIGHT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOCKSIGHT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOCKSIGHT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOCKSIGHT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"STOCKSIGHT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"STOCKSIGHT_REDIS_ADDR"`
	Password     string        `envconfig:"STOCKSIGHT_REDIS_PASSWORD"`
	DB           int           `envconfig:"STOCKSIGHT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STOCKSIGHT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STOCKSIGHT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STOCKSIGHT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STOCKSIGHT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STOCKSIGHT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"STOCKSIGHT_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"STOCKSIGHT_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"STOCKSIGHT_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"STOCKSIGHT_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STOCKSIGHT_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STOCKSIGHT_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STOCKSIGHT_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STOCKSIGHT_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STOCKSIGHT_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"STOCKSIGHT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"STOCKSIGHT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"STOCKSIGHT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"STOCKSIGHT_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOCKSIGHT_CORS_ALLOWED_ORIGINS" default:"*"`
}

type AuditConfig struct {
	DefaultPageSize int `envconfig:"STOCKSIGHT_AUDIT_DEFAULT_PAGE_SIZE" default:"50"`
	MaxPageSize     int `envconfig:"STOCKSIGHT_AUDIT_MAX_PAGE_SIZE" default:"200"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range dbEnvVars {
		if parts[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
