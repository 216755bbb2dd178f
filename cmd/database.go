package cmd

import (
	"database/sql"
	"fmt"
	"strings"

	"logistics/internal/adapters/out/postgres/identityrepo"
	"logistics/internal/adapters/out/postgres/paymentrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MustGetGormConnection creates the database when missing, connects and
// migrates the schema.
func MustGetGormConnection(config Config) *gorm.DB {
	if err := createDbIfNotExists(config); err != nil {
		panic(err)
	}

	logLevel := logger.Warn
	if config.Debug {
		logLevel = logger.Info
	}
	db, err := gorm.Open(postgres.Open(makeConnectionString(config, config.DBName)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(fmt.Sprintf("connection to postgres through gorm: %s", err))
	}

	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&paymentrepo.PaymentDTO{},
		&identityrepo.DriverDTO{},
		&identityrepo.ClientDTO{},
		&identityrepo.AdminDTO{},
	)
	if err != nil {
		panic(fmt.Sprintf("auto migrate: %s", err))
	}
	return db
}

func makeConnectionString(config Config, dbName string) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, dbName, config.DBSslMode)
}

func createDbIfNotExists(config Config) error {
	db, err := sql.Open("postgres", makeConnectionString(config, "postgres"))
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", config.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database %s: %w", config.DBName, err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE takes no bind parameters.
	name := `"` + strings.ReplaceAll(config.DBName, `"`, `""`) + `"`
	if _, err = db.Exec("CREATE DATABASE " + name); err != nil {
		return fmt.Errorf("create database %s: %w", config.DBName, err)
	}
	return nil
}
