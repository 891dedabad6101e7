package model

import "time"

// ScoreEntry is the ledger row for one (user, facet) pair. The composite
// primary key guarantees at most one row per pair; the scoring engine only
// ever increments Score in place.
type ScoreEntry struct {
	UserID    string    `gorm:"column:user_id;primaryKey;size:128" json:"user_id"`
	Facet     string    `gorm:"column:facet;primaryKey;size:64" json:"facet"`
	Score     int       `gorm:"column:score;not null;default:0" json:"score"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
}

func (ScoreEntry) TableName() string {
	return "scores"
}
