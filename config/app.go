package config

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"holidayapi/middlewares"
	"holidayapi/models"
)

var (
	DB          *gorm.DB
	RedisClient *redis.Client
)

// InitApp tạo gin engine và mở kết nối DB/Redis khi được cấu hình
func InitApp(cfg *Config, log *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(middlewares.RequestLogger(log), gin.Recovery())

	if cfg.DatabaseURL != "" {
		db, err := ConnectDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		DB = db
		log.Info("connected to database")
	}

	if cfg.RedisAddr != "" {
		rdb, err := ConnectRedis(cfg)
		if err != nil {
			return nil, err
		}
		RedisClient = rdb
		log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	}

	return router, nil
}

func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate users table")
	}
	return db, nil
}

func ConnectRedis(cfg *Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}
	return rdb, nil
}

// Close releases the DB and Redis connections opened by InitApp.
func Close() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
