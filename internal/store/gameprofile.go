package store

import (
	"database/sql"
	"fmt"

	"github.com/davydav/userstats/internal/model"
)

type GameProfileStore struct {
	db *sql.DB
}

func NewGameProfileStore(db *sql.DB) *GameProfileStore {
	return &GameProfileStore{db: db}
}

const profileCols = `id, username, platform_id, site_user_id`

func scanProfile(scanner interface{ Scan(...any) error }) (*model.GameProfile, error) {
	var p model.GameProfile
	err := scanner.Scan(&p.ID, &p.Username, &p.PlatformID, &p.SiteUserID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GameProfileStore) Create(username string, platformID int64) (*model.GameProfile, error) {
	result, err := s.db.Exec(
		`INSERT INTO game_profile (username, platform_id) VALUES (?, ?)`,
		username, platformID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert game profile: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetByID(id)
}

func (s *GameProfileStore) GetByID(id int64) (*model.GameProfile, error) {
	row := s.db.QueryRow(`SELECT `+profileCols+` FROM game_profile WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game profile: %w", err)
	}
	return p, nil
}

func (s *GameProfileStore) GetByUsernameAndPlatform(username string, platformID int64) (*model.GameProfile, error) {
	row := s.db.QueryRow(
		`SELECT `+profileCols+` FROM game_profile WHERE username = ? AND platform_id = ?`,
		username, platformID,
	)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game profile by username: %w", err)
	}
	return p, nil
}

func (s *GameProfileStore) GetByUsername(username string) (*model.GameProfile, error) {
	row := s.db.QueryRow(
		`SELECT `+profileCols+` FROM game_profile WHERE username = ? ORDER BY id LIMIT 1`,
		username,
	)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game profile by username: %w", err)
	}
	return p, nil
}

// GetBySiteUserID returns the profile linked to the given site user, or nil
// when the user has not claimed one. At most one profile is linked per user.
func (s *GameProfileStore) GetBySiteUserID(userID int64) (*model.GameProfile, error) {
	row := s.db.QueryRow(`SELECT `+profileCols+` FROM game_profile WHERE site_user_id = ?`, userID)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get game profile by site user: %w", err)
	}
	return p, nil
}

// Link claims a profile for a site user. Any profile previously linked to
// the user is released first so a user owns at most one profile.
func (s *GameProfileStore) Link(profileID, userID int64) error {
	if _, err := s.db.Exec(
		`UPDATE game_profile SET site_user_id = NULL WHERE site_user_id = ?`, userID,
	); err != nil {
		return fmt.Errorf("release linked profile: %w", err)
	}
	if _, err := s.db.Exec(
		`UPDATE game_profile SET site_user_id = ? WHERE id = ?`, userID, profileID,
	); err != nil {
		return fmt.Errorf("link game profile: %w", err)
	}
	return nil
}

func (s *GameProfileStore) Unlink(profileID int64) error {
	_, err := s.db.Exec(`UPDATE game_profile SET site_user_id = NULL WHERE id = ?`, profileID)
	if err != nil {
		return fmt.Errorf("unlink game profile: %w", err)
	}
	return nil
}
