package service

import (
	"context"
	"errors"

	"github.com/danielstewart77/LeaderboardBot/internal/model"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
	"gorm.io/gorm"
)

type TeamService interface {
	Create(ctx context.Context, name string) (*model.Team, error)
	Assign(ctx context.Context, userName, teamName string) (*model.User, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

type teamService struct {
	teams repository.TeamRepository
}

func NewTeamService(teams repository.TeamRepository) TeamService {
	return &teamService{teams: teams}
}

func (s *teamService) Create(ctx context.Context, name string) (*model.Team, error) {
	team, err := s.teams.CreateTeam(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrTeamExists
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) Assign(ctx context.Context, userName, teamName string) (*model.User, error) {
	team, err := s.teams.FindTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return s.teams.AssignUser(ctx, userName, team.ID)
}

func (s *teamService) ListTeams(ctx context.Context) ([]model.Team, error) {
	return s.teams.ListTeams(ctx)
}

func (s *teamService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.teams.ListUsers(ctx)
}
