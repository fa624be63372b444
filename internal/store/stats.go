package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/davydav/userstats/internal/model"
)

type StatsStore struct {
	db *sql.DB
}

func NewStatsStore(db *sql.DB) *StatsStore {
	return &StatsStore{db: db}
}

const statsCols = `id, player_level, player_kills, player_deaths, kill_death_ratio,
	player_damage, player_wins, player_rank, profile_id, edited_at`

func scanStats(scanner interface{ Scan(...any) error }) (*model.Stats, error) {
	var st model.Stats
	err := scanner.Scan(&st.ID, &st.PlayerLevel, &st.PlayerKills, &st.PlayerDeaths,
		&st.KillDeathRatio, &st.PlayerDamage, &st.PlayerWins, &st.PlayerRank,
		&st.ProfileID, &st.EditedAt)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Upsert writes the current statistics for a profile. The stats table keeps
// one row per profile; a refresh replaces the previous values in place.
func (s *StatsStore) Upsert(st model.Stats) (*model.Stats, error) {
	_, err := s.db.Exec(
		`INSERT INTO stats (player_level, player_kills, player_deaths, kill_death_ratio,
			player_damage, player_wins, player_rank, profile_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET
			player_level = excluded.player_level,
			player_kills = excluded.player_kills,
			player_deaths = excluded.player_deaths,
			kill_death_ratio = excluded.kill_death_ratio,
			player_damage = excluded.player_damage,
			player_wins = excluded.player_wins,
			player_rank = excluded.player_rank,
			edited_at = ?`,
		st.PlayerLevel, st.PlayerKills, st.PlayerDeaths, st.KillDeathRatio,
		st.PlayerDamage, st.PlayerWins, st.PlayerRank, st.ProfileID,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert stats: %w", err)
	}
	return s.GetByProfileID(st.ProfileID)
}

func (s *StatsStore) GetByProfileID(profileID int64) (*model.Stats, error) {
	row := s.db.QueryRow(`SELECT `+statsCols+` FROM stats WHERE profile_id = ?`, profileID)
	st, err := scanStats(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	return st, nil
}
