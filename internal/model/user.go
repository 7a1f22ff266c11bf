package model

import "time"

// User mirrors the identity issued by the external login provider. Accounts
// are created and managed elsewhere; this table only carries what the
// leaderboard needs to render a row.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserName  string    `gorm:"type:varchar(64)" json:"userName"`
	Email     string    `gorm:"type:varchar(128)" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
