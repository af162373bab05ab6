package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fetscr/internal/config"
	"fetscr/internal/history"
	"fetscr/internal/user"
)

// Open connects to the configured database and migrates the schema.
// The returned handle is the single process-wide store handle; callers
// pass it to the store constructors instead of reaching for a global.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := conn.AutoMigrate(&user.User{}, &history.QueryEvent{}); err != nil {
		return nil, err
	}
	return conn, nil
}
