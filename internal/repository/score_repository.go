package repository

import (
	"context"
	"errors"

	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"gorm.io/gorm"
)

// UserTotal is one leaderboard row before the team join.
type UserTotal struct {
	UserID     string `gorm:"column:user_id"`
	TotalScore int    `gorm:"column:total_score"`
}

type ScoreRepository interface {
	Get(ctx context.Context, userID, facet string) (int, error)
	Accumulate(ctx context.Context, userID, facet string, delta int) (int, error)
	ListByUser(ctx context.Context, userID string) ([]model.ScoreEntry, error)
	ListAll(ctx context.Context) ([]model.ScoreEntry, error)
	TotalsByUser(ctx context.Context) ([]UserTotal, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Get(ctx context.Context, userID, facet string) (int, error) {
	var entry model.ScoreEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND facet = ?", userID, facet).
		Take(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return entry.Score, nil
}

func (r *scoreRepository) Accumulate(ctx context.Context, userID, facet string, delta int) (int, error) {
	score, err := r.accumulate(ctx, userID, facet, delta)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// two first awards for the same pair raced on the insert; the
		// retry finds the winner's row and increments it
		score, err = r.accumulate(ctx, userID, facet, delta)
	}
	return score, err
}

func (r *scoreRepository) accumulate(ctx context.Context, userID, facet string, delta int) (int, error) {
	var entry model.ScoreEntry
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND facet = ?", userID, facet).
			FirstOrCreate(&entry, &model.ScoreEntry{UserID: userID, Facet: facet}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ScoreEntry{}).
			Where("user_id = ? AND facet = ?", userID, facet).
			Update("score", gorm.Expr("score + ?", delta)).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND facet = ?", userID, facet).
			Take(&entry).Error
	})
	if err != nil {
		return 0, err
	}
	return entry.Score, nil
}

func (r *scoreRepository) ListByUser(ctx context.Context, userID string) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("facet asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scoreRepository) ListAll(ctx context.Context) ([]model.ScoreEntry, error) {
	var entries []model.ScoreEntry
	if err := r.db.WithContext(ctx).
		Order("user_id asc, facet asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scoreRepository) TotalsByUser(ctx context.Context) ([]UserTotal, error) {
	var totals []UserTotal
	if err := r.db.WithContext(ctx).
		Model(&model.ScoreEntry{}).
		Select("user_id, SUM(score) AS total_score").
		Group("user_id").
		Order("total_score DESC").
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	return totals, nil
}
