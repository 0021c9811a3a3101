package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Search    SearchConfig    `yaml:"search"`
	Storage   StorageConfig   `yaml:"storage"`
	Reader    ReaderConfig    `yaml:"reader"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	StaticDir       string        `yaml:"static_dir"       env:"SERVER_STATIC_DIR"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"mydocs-backend"`
	// StatementTimeout bounds every query; 0 leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s"`
}

// RedisConfig holds the Redis connection used by the reader cache.
// An empty URL disables caching.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// AuthConfig holds session and token settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"mydocs"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	SessionTTL       time.Duration `yaml:"session_ttl"        env:"AUTH_SESSION_TTL"        env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	CookieName       string        `yaml:"cookie_name"        env:"AUTH_COOKIE_NAME"        env-default:"mydocs_session"`
	CookieSecure     bool          `yaml:"cookie_secure"      env:"AUTH_COOKIE_SECURE"      env-default:"true"`
}

// AIConfig holds settings for the reimagine endpoint's language model.
// An empty API key disables the endpoint.
type AIConfig struct {
	APIKey          string        `yaml:"api_key"           env:"AI_API_KEY"`
	Model           string        `yaml:"model"             env:"AI_MODEL"             env-default:"claude-sonnet-4-5"`
	MaxTokens       int64         `yaml:"max_tokens"        env:"AI_MAX_TOKENS"        env-default:"4096"`
	Timeout         time.Duration `yaml:"timeout"           env:"AI_TIMEOUT"           env-default:"90s"`
	MaxContentChars int           `yaml:"max_content_chars" env:"AI_MAX_CONTENT_CHARS" env-default:"50000"`
}

// SearchConfig holds Meilisearch settings. An empty URL disables the index
// and search falls back to PostgreSQL.
type SearchConfig struct {
	MeiliURL    string `yaml:"meili_url"     env:"SEARCH_MEILI_URL"`
	MeiliAPIKey string `yaml:"meili_api_key" env:"SEARCH_MEILI_API_KEY"`
	IndexName   string `yaml:"index_name"    env:"SEARCH_INDEX_NAME"    env-default:"mydocs_pages"`
}

// StorageConfig holds object storage settings for avatars.
// An empty endpoint disables avatar uploads.
type StorageConfig struct {
	Endpoint       string `yaml:"endpoint"        env:"STORAGE_ENDPOINT"`
	AccessKey      string `yaml:"access_key"      env:"STORAGE_ACCESS_KEY"`
	SecretKey      string `yaml:"secret_key"      env:"STORAGE_SECRET_KEY"`
	Bucket         string `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"avatars"`
	UseSSL         bool   `yaml:"use_ssl"         env:"STORAGE_USE_SSL"         env-default:"true"`
	PublicBaseURL  string `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	MaxAvatarBytes int64  `yaml:"max_avatar_bytes" env:"STORAGE_MAX_AVATAR_BYTES" env-default:"2097152"`
}

// ReaderConfig holds settings of the public reader.
type ReaderConfig struct {
	CacheTTL time.Duration `yaml:"cache_ttl" env:"READER_CACHE_TTL" env-default:"10m"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	ReimaginePerMinute int           `yaml:"reimagine_per_minute" env:"RATELIMIT_REIMAGINE_PER_MINUTE" env-default:"10"`
	AuthPerMinute      int           `yaml:"auth_per_minute"      env:"RATELIMIT_AUTH_PER_MINUTE"      env-default:"20"`
	CleanupInterval    time.Duration `yaml:"cleanup_interval"     env:"RATELIMIT_CLEANUP_INTERVAL"     env-default:"5m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
