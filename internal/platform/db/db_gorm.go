// Package db provides the GORM database bootstrap.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	authadapters "contact_backend/internal/feature/auth/adapters"
	authentity "contact_backend/internal/feature/auth/domain/entity"
	contactentity "contact_backend/internal/feature/contacts/domain/entity"
)

// OpenDB connects to MySQL using DB_* environment variables, retrying for
// up to a minute while the database comes up. With RUN_MIGRATIONS=true it
// also creates the accounts, contacts, and sessions tables; the unique
// index on accounts.email and the owner index on contacts come from the
// entity tags.
func OpenDB() *gorm.DB {
	dsn := buildDSN()

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.Account{},
			&contactentity.Contact{},
			&authadapters.SessionModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// dsnParams is shared by both connection forms. clientFoundRows makes
// RowsAffected count matched rows rather than changed ones: the
// owner-scoped contact mutations read a zero as "not yours or missing",
// so an owner re-submitting identical values must not look like a skip.
const dsnParams = "charset=utf8mb4&parseTime=true&loc=Local&clientFoundRows=true"

// buildDSN assembles the MySQL DSN from DB_* environment variables,
// preferring a Cloud SQL unix socket when INSTANCE_CONNECTION_NAME is set.
func buildDSN() string {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")

	if instance := os.Getenv("INSTANCE_CONNECTION_NAME"); instance != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?%s",
			user, pass, instance, name, dsnParams)
	}
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		user, pass, host, port, name, dsnParams)
}
