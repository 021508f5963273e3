package database

import "database/sql"

// Migrate creates the schema required by the service. Statements are
// idempotent so the function can run on every startup. Money columns use
// DECIMAL(10,2); timestamp columns use DATETIME(6) so consecutive insight
// rows keep strictly increasing recorded_at values.
func Migrate(db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(80) NOT NULL UNIQUE,
			email VARCHAR(120) NOT NULL UNIQUE,
			password_hash VARCHAR(200) NOT NULL,
			role VARCHAR(32) NOT NULL,
			otp_code VARCHAR(6) NULL,
			otp_expires_at DATETIME(6) NULL,
			is_active TINYINT(1) NOT NULL DEFAULT 0,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
		)`,
		`CREATE TABLE IF NOT EXISTS businesses (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT UNSIGNED NOT NULL,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(50) NULL,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			FOREIGN KEY (user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			business_id BIGINT UNSIGNED NOT NULL,
			item_name VARCHAR(100) NOT NULL,
			description TEXT NULL,
			quantity INT NOT NULL,
			price_per_unit DECIMAL(10,2) NOT NULL,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			FOREIGN KEY (business_id) REFERENCES businesses(id)
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			business_id BIGINT UNSIGNED NOT NULL,
			inventory_id BIGINT UNSIGNED NOT NULL,
			quantity_sold INT NOT NULL,
			total_price DECIMAL(10,2) NOT NULL,
			sold_at DATETIME(6) NOT NULL,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			FOREIGN KEY (business_id) REFERENCES businesses(id),
			FOREIGN KEY (inventory_id) REFERENCES inventory(id)
		)`,
		`CREATE TABLE IF NOT EXISTS insights (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			business_id BIGINT UNSIGNED NOT NULL,
			metric VARCHAR(50) NOT NULL,
			value DECIMAL(10,2) NOT NULL,
			recorded_at DATETIME(6) NOT NULL,
			created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			FOREIGN KEY (business_id) REFERENCES businesses(id)
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
