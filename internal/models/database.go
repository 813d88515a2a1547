package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ContextKey string

const (
	ContextURL ContextKey = "setoran-backend-url"
)

// Connect opens the SQLite database at dsn and configures the connection pool.
func Connect(dsn string) error {
	config := gormConfig()

	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// One connection only, this prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return register(db)
}

// ConnectPostgres opens a PostgreSQL database. dsn can be a URL or a
// key=value connection string.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return register(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// register adds the error translating callbacks and sets the exported
// variable.
func register(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "setoran:after_query", queryCallback},
		{db.Callback().Query().After("*"), "setoran:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "setoran:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "setoran:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "setoran:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "setoran:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "setoran:after_delete", deleteCallback},
		{db.Callback().Delete().After("*"), "setoran:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "setoran:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueConstraints maps the unique indexes to the errors reported for them.
// sqlite reports the columns, PostgreSQL the index name.
var uniqueConstraints = []struct {
	columns string
	index   string
	err     error
}{
	{"regions.name", "region_name", ErrRegionNameNotUnique},
	{"categories.name", "category_name", ErrCategoryNameNotUnique},
	{"roles.name", "role_name", ErrRoleNameNotUnique},
	{"users.username", "user_username", ErrUsernameNotUnique},
	{"allocations.source_id, allocations.region_id", "allocation_source_region", ErrRegionAllocatedTwice},
}

func foreignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed") || strings.Contains(err.Error(), "violates foreign key constraint")
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, u := range uniqueConstraints {
		if strings.Contains(msg, "UNIQUE constraint failed: "+u.columns) || strings.Contains(msg, fmt.Sprintf("unique constraint \"%s\"", u.index)) {
			db.Error = u.err
			return
		}
	}

	if foreignKeyViolation(db.Error) {
		db.Error = ErrInvalidReference
	}
}

// deleteCallback reports deletions rejected by foreign keys as
// referential conflicts.
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if foreignKeyViolation(db.Error) {
		name := strings.TrimSuffix(strings.ReplaceAll(db.Statement.Table, "_", " "), "s")
		db.Error = fmt.Errorf("%w: the %s is still used by other resources", ErrReferentialConflict, name)
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

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || strings.Contains(db.Error.Error(), "SQLSTATE") {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// Transaction runs fn in a transaction. Failures to begin or commit the
// transaction bypass the callbacks and are translated here.
func Transaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	err := db.Transaction(fn)
	if err != nil && err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}
	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Region{}, Category{}, Source{}, Allocation{}, Role{}, User{}, Deposit{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
