package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsPostgres reports if the data source name is a postgres URL.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Connect opens the database and migrates it.
//
// Postgres is used for postgres:// URLs, any other dsn is the path to an
// SQLite database file.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var dialector gorm.Dialector
	if IsPostgres(dsn) {
		dialector = postgres.Open(dsn)
	} else {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}

		separator := "?"
		if strings.Contains(dsn, "?") {
			separator = "&"
		}
		dialector = sqlite.Open(fmt.Sprintf("%s%s_pragma=foreign_keys(1)", dsn, separator))
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite only supports one writer, more connections lead to SQLITE_BUSY errors
	if !IsPostgres(dsn) {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := db.Callback()

	if err := callbacks.Query().After("*").Register("wky:after_query", queryCallback); err != nil {
		return err
	}

	if err := callbacks.Query().After("*").Register("wky:after_query_general", generalCallback); err != nil {
		return err
	}

	if err := callbacks.Create().After("*").Register("wky:after_create", createUpdateCallback); err != nil {
		return err
	}

	if err := callbacks.Create().After("*").Register("wky:after_create_general", generalCallback); err != nil {
		return err
	}

	if err := callbacks.Update().After("*").Register("wky:after_update", createUpdateCallback); err != nil {
		return err
	}

	if err := callbacks.Update().After("*").Register("wky:after_update_general", generalCallback); err != nil {
		return err
	}

	if err := callbacks.Delete().After("*").Register("wky:after_delete_general", generalCallback); err != nil {
		return err
	}

	if err := callbacks.Row().After("*").Register("wky:after_row_general", generalCallback); err != nil {
		return err
	}

	return callbacks.Raw().After("*").Register("wky:after_raw_general", generalCallback)
}

var (
	pluralIES = regexp.MustCompile("ies$")
	pluralES  = regexp.MustCompile("(ch|sh|x)es$")
)

// resourceName returns a human readable, singular name for a table.
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	name = pluralIES.ReplaceAllString(name, "y")
	name = pluralES.ReplaceAllString(name, "$1")
	return strings.TrimSuffix(name, "s")
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError
	isPg := errors.As(db.Error, &pgErr)

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: categories.name") || (isPg && pgErr.Code == pgUniqueViolation && pgErr.TableName == "categories") {
		db.Error = ErrCategoryNameNotUnique
		return
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") || (isPg && pgErr.Code == pgForeignKeyViolation) {
		db.Error = ErrReferenceNotFound
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var sqliteErr *go_sqlite.Error
	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || errors.As(db.Error, &sqliteErr) || errors.As(db.Error, &pgErr) {
		log.Error().Str("table", db.Statement.Table).Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(Category{}, CategoryRule{}, UploadBatch{}, BankTransaction{}, TransactionTag{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// ServerInfo returns the current time and version of the database server.
func ServerInfo(ctx context.Context, db *gorm.DB) (now time.Time, version string, err error) {
	if db.Dialector.Name() == "postgres" {
		row := db.WithContext(ctx).Raw("SELECT now(), version()").Row()
		err = row.Scan(&now, &version)
		return now.In(time.UTC), version, err
	}

	row := db.WithContext(ctx).Raw("SELECT sqlite_version()").Row()
	if err = row.Scan(&version); err != nil {
		return time.Time{}, "", err
	}

	return time.Now().In(time.UTC), "SQLite " + version, nil
}
