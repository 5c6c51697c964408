package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and verifies it with a ping.
func Connect(cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dialector, err := dialectorFor(cfg, timeout)
	if err != nil {
		return nil, err
	}

	// Suppress GORM logging; callers log through zap
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if dialector.Name() == DriverSQLite {
		// Every connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg Config, timeout int) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case DriverSQLite, "":
		name := cfg.Name
		if name == "" {
			name = ":memory:"
		}
		return sqlite.Open(name), nil
	case DriverMySQL:
		// Special characters in the password must be URL encoded
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		return mysql.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
