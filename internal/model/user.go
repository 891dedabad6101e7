package model

import "time"

// User records a team membership. TeamID is a weak reference: a user with a
// nil TeamID is valid ("no team"), and ledger rows may exist for user ids
// that have no User row at all.
type User struct {
	Name      string    `gorm:"column:name;primaryKey;size:128" json:"name"`
	TeamID    *string   `gorm:"column:team_id;size:36;index" json:"team_id,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (User) TableName() string {
	return "users"
}
