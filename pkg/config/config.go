package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Auth         AuthConfig
	JWT          JWTConfig
	Firebase     FirebaseConfig
	Catalog      CatalogConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if err := cfg.validateAuth(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPASSIST_APP_ENV" default:"dev"`
	Port         string `envconfig:"SHOPASSIST_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"SHOPASSIST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPASSIST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPASSIST_DB_DSN"`
	Driver string `envconfig:"SHOPASSIST_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPASSIST_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPASSIST_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPASSIST_DB_USER"`
	LegacyPassword string `envconfig:"SHOPASSIST_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPASSIST_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPASSIST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPASSIST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPASSIST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPASSIST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPASSIST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver is the embedded sqlite engine.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DBDriverSQLite)
}

// RedisConfig is optional. With neither URL nor Address set, Redis-backed features are disabled.
type RedisConfig struct {
	URL          string        `envconfig:"SHOPASSIST_REDIS_URL"`
	Address      string        `envconfig:"SHOPASSIST_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPASSIST_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPASSIST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPASSIST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPASSIST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPASSIST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPASSIST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPASSIST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type AuthConfig struct {
	Provider string `envconfig:"SHOPASSIST_AUTH_PROVIDER" default:"firebase"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPASSIST_JWT_SECRET"`
	Issuer            string `envconfig:"SHOPASSIST_JWT_ISSUER" default:"shopassist"`
	ExpirationMinutes int    `envconfig:"SHOPASSIST_JWT_EXPIRATION_MINUTES" default:"60"`
}

func (j JWTConfig) Expiration() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// FirebaseConfig drives ID token verification. CredentialsFile is optional because
// verification only needs Google's public certificates.
type FirebaseConfig struct {
	ProjectID       string        `envconfig:"SHOPASSIST_FIREBASE_PROJECT_ID"`
	CredentialsFile string        `envconfig:"SHOPASSIST_FIREBASE_CREDENTIALS_FILE"`
	VerifyTimeout   time.Duration `envconfig:"SHOPASSIST_FIREBASE_VERIFY_TIMEOUT" default:"10s"`
}

type CatalogConfig struct {
	SeedOnStart bool  `envconfig:"SHOPASSIST_SEED_ON_START" default:"true"`
	MinSize     int   `envconfig:"SHOPASSIST_CATALOG_MIN_SIZE" default:"200"`
	RandomSeed  int64 `envconfig:"SHOPASSIST_CATALOG_RANDOM_SEED" default:"0"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SHOPASSIST_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,https://ecommerce-chatbot-chi.vercel.app"`
}

type RateLimitConfig struct {
	ChatbotLimit  int           `envconfig:"SHOPASSIST_CHATBOT_RATE_LIMIT" default:"30"`
	ChatbotWindow time.Duration `envconfig:"SHOPASSIST_CHATBOT_RATE_WINDOW" default:"1m"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"SHOPASSIST_AUTO_MIGRATE" default:"true"`
}

func (c *Config) validateAuth() error {
	switch strings.ToLower(strings.TrimSpace(c.Auth.Provider)) {
	case AuthProviderJWT:
		if c.JWT.Secret == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvJWTSecret, EnvAuthProvider, AuthProviderJWT)
		}
	case AuthProviderFirebase:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("%s is required when %s=%s", EnvFirebaseProjectID, EnvAuthProvider, AuthProviderFirebase)
		}
	default:
		return fmt.Errorf("unsupported %s %q", EnvAuthProvider, c.Auth.Provider)
	}
	return nil
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		return fmt.Errorf("%s is required when %s=%s", EnvDBDSN, EnvDBDriver, DBDriverSQLite)
	}

	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	var missing []string
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
