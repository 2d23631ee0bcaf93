package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "navmind/internal/config"
	"navmind/internal/domain"
	"navmind/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

const mysqlDuplicateEntry = 1062

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// EnsureSchema creates the users table when missing.
func (r UserRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not configured"}
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(120) NOT NULL,
			email VARCHAR(190) NOT NULL UNIQUE,
			password_hash VARCHAR(100) NOT NULL,
			role VARCHAR(32) NOT NULL DEFAULT 'user',
			status VARCHAR(32) NOT NULL DEFAULT 'active',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("ensure users table: %w", err)
	}
	return nil
}

// Create inserts a user and returns its id. A taken email is a ConflictError.
func (r UserRepository) Create(u models.User) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not configured"}
	}
	res, err := db.Exec(`
		INSERT INTO users (name, email, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?)`,
		u.Name, strings.ToLower(strings.TrimSpace(u.Email)), u.PasswordHash, u.Role, u.Status)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

// GetByEmail loads a user by (case-insensitive) email.
func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	db := r.db()
	if db == nil {
		return u, domain.InternalError{Msg: "database not configured"}
	}
	err := db.QueryRow(`
		SELECT id, name, email, password_hash, role, status, created_at
		FROM users
		WHERE email = ?
		LIMIT 1`, strings.ToLower(strings.TrimSpace(email))).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, fmt.Errorf("query user: %w", err)
	}
	return u, nil
}
