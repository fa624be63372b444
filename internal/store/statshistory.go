package store

import (
	"database/sql"
	"fmt"

	"github.com/davydav/userstats/internal/model"
)

// StatsHistoryStore appends and reads per-profile session snapshots in the
// session_stats table.
type StatsHistoryStore struct {
	db *sql.DB
}

func NewStatsHistoryStore(db *sql.DB) *StatsHistoryStore {
	return &StatsHistoryStore{db: db}
}

func (s *StatsHistoryStore) Create(h model.StatsHistory) (*model.StatsHistory, error) {
	result, err := s.db.Exec(
		`INSERT INTO session_stats (legend_played, map_played, damage_dealt, start_time, end_time, session_kills, profile_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		h.LegendPlayed, h.MapPlayed, h.DamageDealt, h.StartTime, h.EndTime, h.SessionKills, h.ProfileID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert stats history: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	h.ID = id
	return &h, nil
}

func (s *StatsHistoryStore) ListByProfileID(profileID int64) ([]model.StatsHistory, error) {
	rows, err := s.db.Query(
		`SELECT id, legend_played, map_played, damage_dealt, start_time, end_time, session_kills, profile_id
		FROM session_stats WHERE profile_id = ? ORDER BY id`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("list stats history: %w", err)
	}
	defer rows.Close()

	var history []model.StatsHistory
	for rows.Next() {
		var h model.StatsHistory
		if err := rows.Scan(&h.ID, &h.LegendPlayed, &h.MapPlayed, &h.DamageDealt,
			&h.StartTime, &h.EndTime, &h.SessionKills, &h.ProfileID); err != nil {
			return nil, fmt.Errorf("scan stats history: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
