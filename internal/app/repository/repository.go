package repository

import (
	"api-transferegov/internal/app/config"
	"api-transferegov/internal/app/dsn"
	"api-transferegov/internal/app/redis"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db          *gorm.DB
	redisClient *redis.Client
	minioClient *minio.Client
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	// Инициализируем базу данных
	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Пул соединений: одно соединение на запрос, возвращается после ответа
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	repo := New(db)

	// Redis нужен только для общего кэша ответов
	if cfg.CacheBackend == config.CacheBackendRedis {
		repo.redisClient, err = redis.NewClient(cfg)
		if err != nil {
			logrus.Warnf("Failed to initialize Redis client: %v", err)
			// Продолжаем без Redis, кэш откатится на память
		}
	}

	// MinIO нужен только для архива статистики
	if cfg.MinIOEndpoint != "" {
		repo.minioClient, err = InitMinIOClient(cfg)
		if err != nil {
			logrus.Warnf("Failed to initialize MinIO client: %v", err)
		}
	}

	return repo, nil
}

// New оборачивает уже открытое соединение
func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB возвращает gorm соединение
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping проверяет доступность базы
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// GetRedisClient возвращает Redis клиент
func (r *Repository) GetRedisClient() *redis.Client {
	return r.redisClient
}

// GetMinIOClient возвращает MinIO клиент
func (r *Repository) GetMinIOClient() *minio.Client {
	return r.minioClient
}

// Close закрывает все соединения
func (r *Repository) Close() {
	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			logrus.Errorf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := r.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("Error closing database: %v", err)
		}
	}
}

// InitMinIOClient подключается к MinIO и создает bucket для статистики
func InitMinIOClient(cfg *config.Config) (*minio.Client, error) {
	minioClient, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()

	// Создаем bucket если не существует
	exists, err := minioClient.BucketExists(ctx, cfg.MinIOBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = minioClient.MakeBucket(ctx, cfg.MinIOBucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	logrus.Info("MinIO client initialized successfully")
	return minioClient, nil
}
