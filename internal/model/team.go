package model

import "time"

// Team has a unique, case-sensitive name. There is no delete lifecycle.
type Team struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Name      string    `gorm:"column:name;uniqueIndex;not null;size:128" json:"name"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}
