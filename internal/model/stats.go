package model

import "time"

// Stats is the current point-in-time statistics row for a game profile.
// Exactly one row exists per profile; refreshes update it in place.
type Stats struct {
	ID             int64      `json:"id"`
	PlayerLevel    int        `json:"playerLevel"`
	PlayerKills    int        `json:"playerKills"`
	PlayerDeaths   int        `json:"playerDeaths"`
	KillDeathRatio float64    `json:"killDeathRatio"`
	PlayerDamage   int        `json:"playerDamage"`
	PlayerWins     int        `json:"playerWins"`
	PlayerRank     string     `json:"playerRank"`
	ProfileID      int64      `json:"profileId"`
	EditedAt       *time.Time `json:"editedAt"`
}

// StatsHistory is one historical snapshot row, appended each time fresh
// statistics are fetched from the upstream API.
type StatsHistory struct {
	ID           int64  `json:"id"`
	LegendPlayed string `json:"legendPlayed"`
	MapPlayed    string `json:"mapPlayed"`
	DamageDealt  int    `json:"damageDealt"`
	StartTime    int64  `json:"startTime"`
	EndTime      int64  `json:"endTime"`
	SessionKills int    `json:"sessionKills"`
	ProfileID    int64  `json:"profileId"`
}
