package database

import (
	"log/slog"
	"regexp"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

type options struct {
	logLevel logger.LogLevel
}

// Option tunes the gorm session opened by Connect.
type Option func(*options)

// WithLogLevel sets the gorm SQL logger level.
func WithLogLevel(level logger.LogLevel) Option {
	return func(o *options) { o.logLevel = level }
}

// Connect opens PostgreSQL for postgres:// URLs and SQLite (pure Go driver)
// for anything else. SQLite connections always enforce foreign keys.
func Connect(dsn string, opts ...Option) (*gorm.DB, error) {
	o := options{logLevel: logger.Warn}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(o.logLevel),
		TranslateError: true,
	}

	dsn = SanitizeDSN(dsn)
	if IsPostgres(dsn) {
		slog.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	slog.Info("using SQLite", "dsn", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        withForeignKeys(dsn),
		}),
		cfg,
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isMemory(dsn) {
		// every new connection to :memory: is a fresh, empty database
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, err
	}

	return db, nil
}

// IsPostgres reports whether dsn points at a PostgreSQL server.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isMemory(dsn string) bool {
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

var dsnJunk = regexp.MustCompile(`[\s\x{200B}-\x{200D}\x{FEFF}\x{2500}-\x{257F}|]`)

// SanitizeDSN strips characters that tend to sneak into connection strings
// pasted from dashboards: surrounding quotes, whitespace, zero-width and
// box-drawing characters, pipes.
func SanitizeDSN(raw string) string {
	dsn := strings.TrimSpace(raw)
	dsn = strings.Trim(dsn, `"`)
	return dsnJunk.ReplaceAllString(dsn, "")
}
