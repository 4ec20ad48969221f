package config

const (
	EnvPrefix = "SHOPASSIST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"

	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"

	EnvAppEnv       = "SHOPASSIST_APP_ENV"
	EnvPort         = "SHOPASSIST_APP_PORT"
	EnvLogLevel     = "SHOPASSIST_LOG_LEVEL"
	EnvLogWarnStack = "SHOPASSIST_LOG_WARN_STACK"

	EnvDBDSN      = "SHOPASSIST_DB_DSN"
	EnvDBDriver   = "SHOPASSIST_DB_DRIVER"
	EnvDBHost     = "SHOPASSIST_DB_HOST"
	EnvDBPort     = "SHOPASSIST_DB_PORT"
	EnvDBUser     = "SHOPASSIST_DB_USER"
	EnvDBPassword = "SHOPASSIST_DB_PASSWORD"
	EnvDBName     = "SHOPASSIST_DB_NAME"
	EnvDBSSLMode  = "SHOPASSIST_DB_SSLMODE"

	EnvRedisURL  = "SHOPASSIST_REDIS_URL"
	EnvRedisAddr = "SHOPASSIST_REDIS_ADDR"

	EnvAuthProvider       = "SHOPASSIST_AUTH_PROVIDER"
	EnvJWTSecret          = "SHOPASSIST_JWT_SECRET"
	EnvJWTIssuer          = "SHOPASSIST_JWT_ISSUER"
	EnvJWTExpMins         = "SHOPASSIST_JWT_EXPIRATION_MINUTES"
	EnvFirebaseProjectID  = "SHOPASSIST_FIREBASE_PROJECT_ID"
	EnvFirebaseCredentials = "SHOPASSIST_FIREBASE_CREDENTIALS_FILE"
	EnvFirebaseTimeout     = "SHOPASSIST_FIREBASE_VERIFY_TIMEOUT"

	EnvSeedOnStart     = "SHOPASSIST_SEED_ON_START"
	EnvCatalogMinSize  = "SHOPASSIST_CATALOG_MIN_SIZE"
	EnvCatalogSeedRand = "SHOPASSIST_CATALOG_RANDOM_SEED"

	EnvCORSOrigins = "SHOPASSIST_CORS_ALLOWED_ORIGINS"

	EnvChatbotRateLimit  = "SHOPASSIST_CHATBOT_RATE_LIMIT"
	EnvChatbotRateWindow = "SHOPASSIST_CHATBOT_RATE_WINDOW"

	EnvAutoMigrate = "SHOPASSIST_AUTO_MIGRATE"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
