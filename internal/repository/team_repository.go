package repository

import (
	"context"
	"errors"

	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository interface {
	CreateTeam(ctx context.Context, name string) (*model.Team, error)
	FindTeamByName(ctx context.Context, name string) (*model.Team, error)
	AssignUser(ctx context.Context, userName, teamID string) (*model.User, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	MembersOf(ctx context.Context, teamID string) ([]model.User, error)
}

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// CreateTeam relies on the unique index on name: a racing duplicate fails
// with gorm.ErrDuplicatedKey rather than producing two teams.
func (r *teamRepository) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	team := &model.Team{ID: uuid.NewString(), Name: name}
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) FindTeamByName(ctx context.Context, name string) (*model.Team, error) {
	var team model.Team
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Take(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) AssignUser(ctx context.Context, userName, teamID string) (*model.User, error) {
	user, err := r.assignUser(ctx, userName, teamID)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// two racing first assignments for the same user collided on the
		// insert; the retry finds the winner's row and re-parents it
		user, err = r.assignUser(ctx, userName, teamID)
	}
	return user, err
}

func (r *teamRepository) assignUser(ctx context.Context, userName, teamID string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("name = ?", userName).
			FirstOrCreate(&user, &model.User{Name: userName}).Error; err != nil {
			return err
		}
		// last assignment wins; no membership history is kept
		if err := tx.Model(&user).Update("team_id", teamID).Error; err != nil {
			return err
		}
		return tx.Where("name = ?", userName).Take(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *teamRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *teamRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *teamRepository) MembersOf(ctx context.Context, teamID string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("name asc").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
