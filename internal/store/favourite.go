package store

import (
	"database/sql"
	"fmt"

	"github.com/davydav/userstats/internal/model"
)

type FavouriteStore struct {
	db *sql.DB
}

func NewFavouriteStore(db *sql.DB) *FavouriteStore {
	return &FavouriteStore{db: db}
}

func (s *FavouriteStore) Exists(userID, profileID int64) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM favourites WHERE user_id = ? AND profile_id = ?`,
		userID, profileID,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check favourite: %w", err)
	}
	return true, nil
}

func (s *FavouriteStore) Create(userID, profileID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO favourites (user_id, profile_id) VALUES (?, ?)`,
		userID, profileID,
	)
	if err != nil {
		return fmt.Errorf("insert favourite: %w", err)
	}
	return nil
}

func (s *FavouriteStore) Delete(userID, profileID int64) error {
	_, err := s.db.Exec(
		`DELETE FROM favourites WHERE user_id = ? AND profile_id = ?`,
		userID, profileID,
	)
	if err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	return nil
}

// Toggle flips the favourite state and reports whether the profile is
// favourited after the call. Toggling twice restores the original state.
func (s *FavouriteStore) Toggle(userID, profileID int64) (bool, error) {
	exists, err := s.Exists(userID, profileID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, s.Delete(userID, profileID)
	}
	return true, s.Create(userID, profileID)
}

// ListByUserID returns the user's favourited profiles with platform names
// for display.
func (s *FavouriteStore) ListByUserID(userID int64) ([]model.FavouriteProfile, error) {
	rows, err := s.db.Query(
		`SELECT gp.id, gp.username, p.platform_name
		FROM favourites f
		JOIN game_profile gp ON gp.id = f.profile_id
		JOIN platform p ON p.id = gp.platform_id
		WHERE f.user_id = ?
		ORDER BY gp.username`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	defer rows.Close()

	var favourites []model.FavouriteProfile
	for rows.Next() {
		var f model.FavouriteProfile
		if err := rows.Scan(&f.ProfileID, &f.Username, &f.PlatformName); err != nil {
			return nil, fmt.Errorf("scan favourite: %w", err)
		}
		favourites = append(favourites, f)
	}
	return favourites, rows.Err()
}
