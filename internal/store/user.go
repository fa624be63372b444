package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davydav/userstats/internal/model"
)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userCols = `id, username, email, password, created_at, edited_at, profile_picture`

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := scanner.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.EditedAt, &u.ProfilePicture)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. Email and username uniqueness is enforced by
// unique indexes; violations come back as ErrDuplicateEmail or
// ErrDuplicateUsername.
func (s *UserStore) Create(username, email, passwordHash string) (*model.User, error) {
	result, err := s.db.Exec(
		`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		username, email, passwordHash,
	)
	if err != nil {
		return nil, classifyUserConflict(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByEmail(email string) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// Update changes username and email and stamps edited_at. Conflicts map to
// the same sentinels as Create.
func (s *UserStore) Update(id int64, username, email string) (*model.User, error) {
	_, err := s.db.Exec(
		`UPDATE users SET username = ?, email = ?, edited_at = ? WHERE id = ?`,
		username, email, time.Now().UTC(), id,
	)
	if err != nil {
		return nil, classifyUserConflict(err)
	}
	return s.GetByID(id)
}

func (s *UserStore) UpdateProfilePicture(id int64, url string) error {
	_, err := s.db.Exec(
		`UPDATE users SET profile_picture = ?, edited_at = ? WHERE id = ?`,
		url, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update profile picture: %w", err)
	}
	return nil
}

func (s *UserStore) Delete(id int64) error {
	_, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
