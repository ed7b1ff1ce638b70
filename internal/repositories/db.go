// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"log"
	"os"
	"time"

	"vigil/internal/config"
	"vigil/internal/models"

	"vigil/internal/repositories/cache"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance used across the application.
var DB *gorm.DB
var CacheService *cache.CacheService

// DBConfig holds database connection pool configuration
type DBConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var dbConfig = DBConfig{
	MaxIdleConns:    10,
	MaxOpenConns:    100,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: time.Minute * 30,
}

// Seed blacklist shipped with the product. These are inserted on first
// startup so the engine has known-bad values to match against out of the box.
var (
	seedBlacklistIPs = []string{
		"192.168.1.100",
		"10.0.0.50",
		"172.16.0.25",
		"203.0.113.45",
		"198.51.100.78",
	}
	seedBlacklistAccounts = []string{
		"ACC123456789",
		"ACC987654321",
		"ACC555666777",
		"ACC111222333",
	}
)

const seedReason = "Seed data"

// InitDB initializes the database connection.
// It sets up the connection pool, performs migrations,
// seeds the blacklist, and configures the database with proper settings.
func InitDB() error {
	initPostgres()

	redisCfg := &cache.RedisConfig{
		Host:     config.GetEnv("REDIS_HOST", "localhost"),
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	}
	redisClient := cache.NewRedisClient(redisCfg)
	CacheService = cache.NewCacheService(redisClient, 24*time.Hour)

	err := DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.BlacklistEntry{},
	)
	if err != nil {
		return err
	}

	return SeedBlacklist(DB)
}

// SeedBlacklist inserts the predefined blacklist entries when the table is
// empty. Re-running against a populated table is a no-op, so both the server
// and the seed binary can call it safely.
func SeedBlacklist(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BlacklistEntry{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	entries := make([]models.BlacklistEntry, 0, len(seedBlacklistIPs)+len(seedBlacklistAccounts))
	for _, ip := range seedBlacklistIPs {
		entries = append(entries, models.BlacklistEntry{
			Kind:    models.BlacklistKindIP,
			Value:   ip,
			Reason:  seedReason,
			AddedAt: now,
		})
	}
	for _, account := range seedBlacklistAccounts {
		entries = append(entries, models.BlacklistEntry{
			Kind:    models.BlacklistKindAccount,
			Value:   account,
			Reason:  seedReason,
			AddedAt: now,
		})
	}

	if err := db.Create(&entries).Error; err != nil {
		return err
	}
	log.Printf("✅ Blacklist seeded with %d entries", len(entries))
	return nil
}

func initPostgres() {
	dbName := config.GetEnv("DB_NAME", "vigil")

	dsn := "host=" + config.GetEnv("DB_HOST", "localhost") +
		" user=" + config.GetEnv("DB_USER", "postgres") +
		" password=" + config.GetEnv("DB_PASSWORD", "postgres") +
		" dbname=" + dbName +
		" port=" + config.GetEnv("DB_PORT", "5432") +
		" sslmode=" + config.GetEnv("DB_SSLMODE", "disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance:", err)
	}

	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(dbConfig.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(dbConfig.ConnMaxIdleTime)

	// Configure GORM logger to ignore "record not found" errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn, // Only log warnings and errors
			IgnoreRecordNotFoundError: true,        // Ignore "record not found"
			Colorful:                  true,
		},
	)
	db.Logger = newLogger

	log.Println("✅ PostgreSQL connected & migrations applied successfully!")
}

// ResetDatabase drops and recreates all application tables. Intended for
// local development only.
func ResetDatabase() error {
	err := DB.Migrator().DropTable(
		&models.User{},
		&models.Transaction{},
		&models.BlacklistEntry{},
	)
	if err != nil {
		return err
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.BlacklistEntry{},
	); err != nil {
		return err
	}

	return SeedBlacklist(DB)
}
