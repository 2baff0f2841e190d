package database

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite" // registers the CGO-free "sqlite" driver

	"studiobooking/internal/domain"
)

// Connect opens Postgres for postgres:// DSNs, otherwise a modernc-backed
// SQLite database (local development and tests).
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// EnsureOverlapConstraint installs the exclusion constraint that makes the
// database itself reject overlapping pending/confirmed reservations. It is
// the backstop behind the application-level lock. SQLite has no exclusion
// constraints, so outside Postgres this is a no-op and the lock stands alone.
func EnsureOverlapConstraint(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	ddl := fmt.Sprintf(`DO $$
BEGIN
    ALTER TABLE reservations
        ADD CONSTRAINT %s
        EXCLUDE USING gist (tstzrange(start_time, end_time) WITH &&)
        WHERE (status IN ('pending', 'confirmed'));
EXCEPTION
    WHEN duplicate_table OR duplicate_object THEN NULL;
END $$`, domain.ReservationNoOverlapConstraint)
	return db.Exec(ddl).Error
}
