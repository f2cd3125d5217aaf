package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the database and prepares it for use.
//
// If DB_HOST is set, a PostgreSQL server is used, configured through
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME. Otherwise the
// SQLite database file at sqlitePath is used, it and its directory are
// created if they do not exist yet.
func Connect(sqlitePath string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},

		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var db *gorm.DB
	var err error

	host, usePostgres := os.LookupEnv("DB_HOST")
	if usePostgres {
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}

		name := os.Getenv("DB_NAME")
		if name == "" {
			name = "expenses"
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
			host, port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), name)
		db, err = gorm.Open(postgres.Open(dsn), config)
	} else {
		err = os.MkdirAll(filepath.Dir(sqlitePath), os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not create database directory: %w", err)
		}

		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", sqlitePath)), config)
	}

	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors.
	if !usePostgres {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("expense_tracker:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("expense_tracker:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("expense_tracker:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("expense_tracker:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("expense_tracker:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("expense_tracker:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("expense_tracker:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and remove the plural "s"
		name := strings.TrimSuffix(db.Statement.Table, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for
// create and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// At most one budget per category, month and year. SQLite reports
	// this in the error message, PostgreSQL as a unique_violation on
	// the index.
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: budgets.category, budgets.month, budgets.year") {
		db.Error = ErrBudgetNotUnique
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(db.Error, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "budget_category_period" {
		db.Error = ErrBudgetNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message so that
// server admins can debug.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	var pgErr *pgconn.PgError
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate creates and updates the schema for all models. It only ever
// adds to the schema, checks existence before creating and is therefore
// safe to run on every startup.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Expense{}, Budget{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
