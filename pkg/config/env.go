package config

// EnvPrefix is the envconfig prefix shared by every variable.
const EnvPrefix = "STOCKSIGHT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced outside struct tags.
const (
	EnvAppEnv     = "STOCKSIGHT_APP_ENV"
	EnvPort       = "STOCKSIGHT_APP_PORT"
	EnvDBDSN      = "STOCKSIGHT_DB_DSN"
	EnvDBHost     = "STOCKSIGHT_DB_HOST"
	EnvDBUser     = "STOCKSIGHT_DB_USER"
	EnvDBName     = "STOCKSIGHT_DB_NAME"
	EnvRedisURL   = "STOCKSIGHT_REDIS_URL"
	EnvJWTSecret  = "STOCKSIGHT_JWT_SECRET"
	EnvJWTIssuer  = "STOCKSIGHT_JWT_ISSUER"
	EnvJWTExpMins = "STOCKSIGHT_JWT_EXPIRATION_MINUTES"
)

var dbEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
