package model

import "time"

type User struct {
	ID             int64      `json:"id"`
	Username       string     `json:"userName"`
	Email          string     `json:"email"`
	Password       string     `json:"-"`
	CreatedAt      time.Time  `json:"createdAt"`
	EditedAt       *time.Time `json:"editedAt"`
	ProfilePicture *string    `json:"profilePicture"`
}
