package store

import (
	"database/sql"
	"fmt"

	"github.com/davydav/userstats/internal/model"
)

// PlatformStore reads the static platform reference data seeded by the
// initial migration (PC, XBOX, PSN).
type PlatformStore struct {
	db *sql.DB
}

func NewPlatformStore(db *sql.DB) *PlatformStore {
	return &PlatformStore{db: db}
}

func (s *PlatformStore) GetByName(name string) (*model.Platform, error) {
	var p model.Platform
	err := s.db.QueryRow(
		`SELECT id, platform_name FROM platform WHERE platform_name = ?`, name,
	).Scan(&p.ID, &p.PlatformName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get platform by name: %w", err)
	}
	return &p, nil
}

func (s *PlatformStore) GetByID(id int64) (*model.Platform, error) {
	var p model.Platform
	err := s.db.QueryRow(
		`SELECT id, platform_name FROM platform WHERE id = ?`, id,
	).Scan(&p.ID, &p.PlatformName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get platform: %w", err)
	}
	return &p, nil
}

func (s *PlatformStore) List() ([]model.Platform, error) {
	rows, err := s.db.Query(`SELECT id, platform_name FROM platform ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []model.Platform
	for rows.Next() {
		var p model.Platform
		if err := rows.Scan(&p.ID, &p.PlatformName); err != nil {
			return nil, fmt.Errorf("scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}
