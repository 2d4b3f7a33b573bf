package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	ServiceHost string
	ServicePort int

	LogLevel  string
	LogFormat string

	// Пагинация
	DefaultPageSize int
	MaxPageSize     int

	// Кэш ответов
	CacheTTL      time.Duration
	CacheBackend  string
	CacheCapacity int
	CacheVary     []string
	// Ограничение на одно вычисление ответа, общее для всех ожидающих
	CacheComputeTimeout time.Duration

	// Тексты ошибок, которые видит клиент
	ErrorMessageNoParams      string
	ErrorMessageInternal      string
	ErrorMessageInvalidParams string

	// Статистика запросов
	StatsUser            string
	StatsPassword        string
	StatsExcludedPaths   []string
	StatsArchiveInterval time.Duration

	// База данных
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBRetryAttempts   int
	DBRetryDelay      time.Duration

	// Redis Configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// MinIO Configuration
	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOUseSSL    bool
	MinIOBucket    string
}

func NewConfig() (*Config, error) {
	var err error

	// Загружаем .env файл
	_ = godotenv.Load()

	// Загружаем TOML конфигурацию
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")
	setDefaults(viper.GetViper())

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// Секреты и адреса из .env
	cfg.StatsUser = getEnv("STATS_USER", cfg.StatsUser)
	cfg.StatsPassword = getEnv("STATS_PASSWORD", cfg.StatsPassword)
	if backend := os.Getenv("CACHE_BACKEND"); backend != "" {
		cfg.CacheBackend = strings.ToLower(backend)
	}

	// Redis конфигурация из .env
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}
	cfg.RedisDB = redisDB

	// MinIO конфигурация из .env, пустой endpoint выключает архив статистики
	cfg.MinIOEndpoint = getEnv("MINIO_ENDPOINT", cfg.MinIOEndpoint)
	cfg.MinIOAccessKey = getEnv("MINIO_ACCESS_KEY", cfg.MinIOAccessKey)
	cfg.MinIOSecretKey = getEnv("MINIO_SECRET_KEY", cfg.MinIOSecretKey)
	cfg.MinIOBucket = getEnv("MINIO_BUCKET", cfg.MinIOBucket)
	if ssl := os.Getenv("MINIO_USE_SSL"); ssl != "" {
		cfg.MinIOUseSSL, _ = strconv.ParseBool(ssl)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFormat", "text")
	v.SetDefault("DefaultPageSize", 100)
	v.SetDefault("MaxPageSize", 1000)
	v.SetDefault("CacheTTL", "30m")
	v.SetDefault("CacheBackend", CacheBackendMemory)
	v.SetDefault("CacheCapacity", 10000)
	v.SetDefault("CacheComputeTimeout", "60s")
	v.SetDefault("ErrorMessageNoParams", "Nenhum parâmetro de consulta foi informado.")
	v.SetDefault("ErrorMessageInternal", "Erro Interno Inesperado.")
	v.SetDefault("ErrorMessageInvalidParams", "Parâmetro de consulta inválido.")
	v.SetDefault("StatsExcludedPaths", []string{"/", "/docs/*any", "/metrics", "/stats", "/health", "/favicon.ico"})
	v.SetDefault("StatsArchiveInterval", "10m")
	v.SetDefault("DBMaxOpenConns", 20)
	v.SetDefault("DBMaxIdleConns", 5)
	v.SetDefault("DBConnMaxLifetime", "30m")
	v.SetDefault("DBRetryAttempts", 1)
	v.SetDefault("DBRetryDelay", "200ms")
	v.SetDefault("MinIOBucket", "api-stats")
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.MaxPageSize < 1 {
		return fmt.Errorf("MaxPageSize must be positive, got %d", c.MaxPageSize)
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DefaultPageSize must be in [1, %d], got %d", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CacheTTL must be positive, got %s", c.CacheTTL)
	}
	if c.CacheComputeTimeout <= 0 {
		return fmt.Errorf("CacheComputeTimeout must be positive, got %s", c.CacheComputeTimeout)
	}
	if c.StatsArchiveInterval <= 0 {
		return fmt.Errorf("StatsArchiveInterval must be positive, got %s", c.StatsArchiveInterval)
	}
	switch c.CacheBackend {
	case CacheBackendMemory:
		if c.CacheCapacity < 1 {
			return fmt.Errorf("CacheCapacity must be positive, got %d", c.CacheCapacity)
		}
	case CacheBackendRedis:
	default:
		return fmt.Errorf("unknown CacheBackend %q", c.CacheBackend)
	}
	if c.DBRetryAttempts < 1 {
		c.DBRetryAttempts = 1
	}
	return nil
}

// ConfigureLogging выставляет уровень и формат logrus
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", c.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// getEnv вспомогательная функция для получения environment variables
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
