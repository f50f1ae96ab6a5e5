package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
)

type Migration struct {
	Version string
	SQL     string
}

// Schema is applied in order; versions are never renumbered.
var Schema = []Migration{
	{
		Version: "000_create_accounts",
		SQL: `
			CREATE TABLE IF NOT EXISTS accounts (
				id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				email         VARCHAR(255) NOT NULL UNIQUE,
				password_hash VARCHAR(255) NOT NULL,
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,
	},
	{
		Version: "001_create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id            BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				account_id    BIGINT UNSIGNED NOT NULL,
				name          VARCHAR(100),
				surname       VARCHAR(100),
				gender        VARCHAR(10),
				avatar        VARCHAR(50),
				height        DOUBLE,
				birth_of_date VARCHAR(10),
				created_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
				updated_at    DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_users_account (account_id),
				FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE
			)`,
	},
	{
		Version: "002_create_user_metrics",
		SQL: `
			CREATE TABLE IF NOT EXISTS user_metrics (
				id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
				user_id     BIGINT UNSIGNED NOT NULL,
				date        VARCHAR(10) NOT NULL,
				weight      DOUBLE NOT NULL,
				height      DOUBLE NOT NULL,
				bmi         DOUBLE NOT NULL,
				weight_diff DOUBLE,
				body_metric VARCHAR(30) NOT NULL,
				created_at  DATETIME NOT NULL,
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,
	},
	{
		Version: "003_create_assessments",
		SQL: `
			CREATE TABLE IF NOT EXISTS assessments (
				id               CHAR(36) PRIMARY KEY,
				user_id          BIGINT UNSIGNED NOT NULL,
				input            JSON NOT NULL,
				bmi              DOUBLE NOT NULL,
				category         VARCHAR(30) NOT NULL,
				model_prediction VARCHAR(50),
				model_agrees     TINYINT(1),
				explanations     JSON NOT NULL,
				advice           JSON NOT NULL,
				created_at       DATETIME(3) NOT NULL,
				INDEX idx_assessments_user_created (user_id, created_at),
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
			)`,
	},
}

// Migrate applies every migration not yet recorded in schema_migrations.
func Migrate(db *sql.DB, migrations []Migration) error {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    VARCHAR(255) PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := db.QueryRow(
			"SELECT COUNT(*) FROM schema_migrations WHERE version = ?",
			m.Version,
		).Scan(&count); err != nil {
			return fmt.Errorf("failed to check migration %s: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		if err := apply(db, m); err != nil {
			return err
		}
		log.Printf("[db] applied migration %s", m.Version)
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", m.Version, err)
	}
	defer tx.Rollback()

	for _, stmt := range strings.Split(m.SQL, ";") {
		if stmt = strings.TrimSpace(stmt); stmt == "" {
			continue
		}
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", m.Version, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
	}
	return tx.Commit()
}
