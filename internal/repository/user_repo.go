package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mindbloom/internal/database"
	"mindbloom/internal/models"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *database.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user into the database
func (r *UserRepository) CreateUser(email, passwordHash, name string) (*models.UserProfile, error) {
	query := `
		INSERT INTO users (email, password_hash, name, points, achievements)
		VALUES (?, ?, ?, 0, '[]')
	`
	id, err := r.db.ExecReturningID(query, email, passwordHash, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &models.UserProfile{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Points:       0,
		Achievements: []string{},
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email address
func (r *UserRepository) GetUserByEmail(email string) (*models.UserProfile, error) {
	query := `
		SELECT id, email, password_hash, name, points, achievements, created_at, updated_at
		FROM users
		WHERE email = ?
	`
	return scanUser(r.db.QueryRow(query, email))
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id int64) (*models.UserProfile, error) {
	query := `
		SELECT id, email, password_hash, name, points, achievements, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return scanUser(r.db.QueryRow(query, id))
}

// GetUserByIDTx retrieves a user by ID using the given query runner,
// which may be a transaction
func (r *UserRepository) GetUserByIDTx(q database.DBTX, id int64) (*models.UserProfile, error) {
	query := `
		SELECT id, email, password_hash, name, points, achievements, created_at, updated_at
		FROM users
		WHERE id = ?
	`
	return scanUser(q.QueryRow(query, id))
}

// UpdateProgressTx updates a user's points and achievements using the given
// query runner, which may be a transaction
func (r *UserRepository) UpdateProgressTx(q database.DBTX, userID int64, points int, achievements []string) error {
	encoded, err := json.Marshal(achievements)
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}

	query := `
		UPDATE users
		SET points = ?, achievements = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err = q.Exec(query, points, string(encoded), userID)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}
	return nil
}

// ListUsers retrieves all users ordered by creation time
func (r *UserRepository) ListUsers() ([]models.UserProfile, error) {
	query := `
		SELECT id, email, password_hash, name, points, achievements, created_at, updated_at
		FROM users
		ORDER BY created_at
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.UserProfile
	for rows.Next() {
		var user models.UserProfile
		var encoded string
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.Name,
			&user.Points,
			&encoded,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &user.Achievements); err != nil {
			return nil, fmt.Errorf("failed to decode achievements: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// scanUser reads a single user row, returning nil when no row matched
func scanUser(row *sql.Row) (*models.UserProfile, error) {
	user := &models.UserProfile{}
	var encoded string
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Points,
		&encoded,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := json.Unmarshal([]byte(encoded), &user.Achievements); err != nil {
		return nil, fmt.Errorf("failed to decode achievements: %w", err)
	}
	if user.Achievements == nil {
		user.Achievements = []string{}
	}

	return user, nil
}
