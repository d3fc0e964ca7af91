package atkdb

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/ensai-tp/attackdb/pkg/atkdb/atkmodel"
	"github.com/ensai-tp/attackdb/pkg/config"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSqlite   = "sqlite"

	// SqliteInMemoryDSN is a private in-memory database. Callers must limit the
	// pool to a single connection or each connection sees its own database.
	SqliteInMemoryDSN = ":memory:"

	defaultPostgresSchema = "tp"
)

// MakeDSN builds the data source name for the configured driver. DB_DATABASE
// is required for postgres and mysql.
func MakeDSN(c config.Configer) string {
	switch driver(c) {
	case DriverMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.GetKey("DB_USERNAME"),
			c.GetKey("DB_PASSWORD"),
			c.GetKey("DB_HOST"),
			c.GetKeyWithDefault("DB_PORT", "3306"),
			c.MustGetKey("DB_DATABASE"))
	case DriverSqlite:
		return c.GetKeyWithDefault("DB_SQLITE_PATH", "attackdb.sqlite")
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.GetKeyWithDefault("DB_HOST", "localhost"),
			c.GetKeyWithDefault("DB_PORT", "5432"),
			c.GetKey("DB_USERNAME"),
			c.GetKey("DB_PASSWORD"),
			c.MustGetKey("DB_DATABASE"),
			c.GetKeyWithDefault("DB_SSLMODE", "disable"))
	}
}

// Dialector returns the gorm dialector for the configured driver. DB_DRIVER
// defaults to postgres.
func Dialector(c config.Configer) (gorm.Dialector, error) {
	switch d := driver(c); d {
	case DriverPostgres:
		return postgres.Open(MakeDSN(c)), nil
	case DriverMySQL:
		return mysql.Open(MakeDSN(c)), nil
	case DriverSqlite:
		return sqlite.Open(MakeDSN(c)), nil
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER '%s'", d)
	}
}

// GormConfig returns the gorm configuration shared by every connection. Table
// names are singular and prefixed with DB_SCHEMA, which defaults to "tp" on
// postgres, so atkmodel.Attack maps to tp.attack.
func GormConfig(c config.Configer) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NamingStrategy: NamingStrategy(schemaName(c)),
	}
}

func NamingStrategy(schemaName string) schema.NamingStrategy {
	ns := schema.NamingStrategy{SingularTable: true}
	if schemaName != "" {
		ns.TablePrefix = schemaName + "."
	}
	return ns
}

func Open(c config.Configer) (*gorm.DB, error) {
	dialector, err := Dialector(c)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, GormConfig(c))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", driver(c))
	}

	return db, nil
}

// MustConnectToDB opens the database described by c, or calls log.Fatalf.
func MustConnectToDB(c config.Configer) *gorm.DB {
	db, err := Open(c)
	if err != nil {
		log.Fatalf("Failed to open db: %s", err)
	}

	return db
}

// OpenSqliteInMemory opens a fresh, unprefixed in-memory database with its
// tables created. Used by tests and local experiments.
func OpenSqliteInMemory() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(SqliteInMemoryDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NamingStrategy: NamingStrategy(""),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := CreateTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CreateTables creates the attack_type and attack tables when they don't
// exist. Existing tables are left untouched.
func CreateTables(db *gorm.DB) error {
	m := db.Migrator()
	for _, model := range []interface{}{&atkmodel.AttackType{}, &atkmodel.Attack{}} {
		if m.HasTable(model) {
			continue
		}

		if err := m.CreateTable(model); err != nil {
			return err
		}
	}

	return nil
}

// SeedAttackTypes makes sure a type row exists for each label.
func SeedAttackTypes(db *gorm.DB, labels ...string) error {
	for _, label := range labels {
		t := atkmodel.AttackType{Name: label}
		if err := db.Where("attack_type_name = ?", label).FirstOrCreate(&t).Error; err != nil {
			return errors.Wrapf(err, "unable to seed attack type '%s'", label)
		}
	}

	return nil
}

func driver(c config.Configer) string {
	return strings.ToLower(c.GetKeyWithDefault("DB_DRIVER", DriverPostgres))
}

func schemaName(c config.Configer) string {
	if s := c.GetKey("DB_SCHEMA"); s != "" {
		return s
	}

	if driver(c) == DriverPostgres {
		return defaultPostgresSchema
	}

	return ""
}
