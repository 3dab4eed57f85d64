package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Tests are skipped when no
// local MySQL named 'puramente_test' is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/puramente_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table touched by integration tests and closes
// the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"CartItems", "Carts", "Orders", "SequenceCounters", "Products", "Blogs"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createSequenceCountersTable := `
	CREATE TABLE IF NOT EXISTS SequenceCounters (
		name VARCHAR(64) NOT NULL PRIMARY KEY,
		value BIGINT UNSIGNED NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id BIGINT UNSIGNED NOT NULL PRIMARY KEY,
		userId VARCHAR(64),
		firstName VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		contactNumber VARCHAR(30) NOT NULL,
		country VARCHAR(100) NOT NULL,
		companyName VARCHAR(150) NOT NULL DEFAULT '',
		companyWebsite VARCHAR(255) NOT NULL DEFAULT '',
		message TEXT,
		orderDetails TEXT,
		excelFilePath VARCHAR(255) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT 'Pending',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_user (userId)
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS Products (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		description TEXT,
		imageUrl VARCHAR(255) NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createBlogsTable := `
	CREATE TABLE IF NOT EXISTS Blogs (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		content TEXT NOT NULL,
		image VARCHAR(255),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createCartsTable := `
	CREATE TABLE IF NOT EXISTS Carts (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId VARCHAR(64) NOT NULL UNIQUE,
		totalAmount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createCartItemsTable := `
	CREATE TABLE IF NOT EXISTS CartItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		cartId INT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		sku VARCHAR(100) NOT NULL DEFAULT '',
		quantity INT NOT NULL DEFAULT 1,
		price DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		FOREIGN KEY (cartId) REFERENCES Carts(id) ON DELETE CASCADE,
		INDEX idx_cart (cartId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"SequenceCounters", createSequenceCountersTable},
		{"Orders", createOrdersTable},
		{"Products", createProductsTable},
		{"Blogs", createBlogsTable},
		{"Carts", createCartsTable},
		{"CartItems", createCartItemsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
