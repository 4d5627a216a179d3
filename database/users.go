package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrUserNotFound пользователь не найден
var ErrUserNotFound = errors.New("пользователь не найден")

// ErrUserExists пользователь с таким именем уже существует
var ErrUserExists = errors.New("пользователь уже существует")

// User учетная запись пользователя
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Salt         string
	CreatedAt    time.Time
}

// CreateUser сохраняет нового пользователя
func (db *DB) CreateUser(username, passwordHash, salt string) (int64, error) {
	res, err := db.conn.Exec(
		`INSERT INTO users (username, password_hash, salt) VALUES (?, ?, ?)`,
		username, passwordHash, salt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserExists
		}
		return 0, fmt.Errorf("создание пользователя: %w", err)
	}
	return res.LastInsertId()
}

// GetUserByUsername находит пользователя по имени
func (db *DB) GetUserByUsername(username string) (*User, error) {
	var u User
	err := db.conn.QueryRow(
		`SELECT id, username, password_hash, salt, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Salt, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("поиск пользователя: %w", err)
	}
	return &u, nil
}
