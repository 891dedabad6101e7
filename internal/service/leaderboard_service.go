package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielstewart77/LeaderboardBot/internal/facet"
	"github.com/danielstewart77/LeaderboardBot/internal/metrics"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
	"gorm.io/gorm"
)

// NoTeamName is reported for users that have ledger entries but no team
// assignment (or no user record at all).
const NoTeamName = "No Team"

type FacetScore struct {
	Facet string `json:"facet"`
	Score int    `json:"score"`
}

type Entry struct {
	UserID     string `json:"user_id"`
	TotalScore int    `json:"total_score"`
	TeamName   string `json:"team_name"`
}

type TeamScores struct {
	TeamName    string         `json:"team_name"`
	TotalScore  int            `json:"total_score"`
	FacetScores map[string]int `json:"facet_scores"`
	Members     []string       `json:"members"`
}

// LeaderboardService computes every read shape on demand from the ledger
// and the team directory; there is no cached aggregate to drift.
type LeaderboardService interface {
	UserScores(ctx context.Context, userID string) ([]FacetScore, int, error)
	Leaderboard(ctx context.Context) ([]Entry, error)
	TeamScores(ctx context.Context, teamName string) (*TeamScores, error)
	RenderMarkdown(ctx context.Context) (string, error)
}

type leaderboardService struct {
	scores  repository.ScoreRepository
	teams   repository.TeamRepository
	catalog *facet.Catalog
}

func NewLeaderboardService(scores repository.ScoreRepository, teams repository.TeamRepository, catalog *facet.Catalog) LeaderboardService {
	return &leaderboardService{scores: scores, teams: teams, catalog: catalog}
}

func (s *leaderboardService) UserScores(ctx context.Context, userID string) ([]FacetScore, int, error) {
	entries, err := s.scores.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if len(entries) == 0 {
		return nil, 0, ErrUserNotFound
	}
	out := make([]FacetScore, 0, len(entries))
	total := 0
	for _, e := range entries {
		out = append(out, FacetScore{Facet: e.Facet, Score: e.Score})
		total += e.Score
	}
	return out, total, nil
}

// Leaderboard outer-joins ledger totals against the team directory: a user
// id with no directory row still gets a row, reported under NoTeamName.
// Totals arrive already sorted descending; ties keep the store's order.
func (s *leaderboardService) Leaderboard(ctx context.Context) ([]Entry, error) {
	totals, err := s.scores.TotalsByUser(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.teams.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	teamByID := make(map[string]string, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t.Name
	}
	teamByUser := make(map[string]string, len(users))
	for _, u := range users {
		if u.TeamID == nil {
			continue
		}
		if name, ok := teamByID[*u.TeamID]; ok {
			teamByUser[u.Name] = name
		}
	}

	entries := make([]Entry, 0, len(totals))
	for _, t := range totals {
		teamName := NoTeamName
		if name, ok := teamByUser[t.UserID]; ok {
			teamName = name
		}
		entries = append(entries, Entry{
			UserID:     t.UserID,
			TotalScore: t.TotalScore,
			TeamName:   teamName,
		})
	}
	metrics.LeaderboardReads.Inc()
	return entries, nil
}

func (s *leaderboardService) TeamScores(ctx context.Context, teamName string) (*TeamScores, error) {
	team, err := s.teams.FindTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	members, err := s.teams.MembersOf(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}

	result := &TeamScores{
		TeamName:    team.Name,
		FacetScores: make(map[string]int),
		Members:     make([]string, 0, len(members)),
	}
	for _, member := range members {
		result.Members = append(result.Members, member.Name)
		entries, err := s.scores.ListByUser(ctx, member.Name)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			result.FacetScores[e.Facet] += e.Score
			result.TotalScore += e.Score
		}
	}
	return result, nil
}

// RenderMarkdown builds the chat-friendly leaderboard table: one column per
// catalog facet, one row per user with ledger entries, missing facets as 0.
func (s *leaderboardService) RenderMarkdown(ctx context.Context) (string, error) {
	entries, err := s.scores.ListAll(ctx)
	if err != nil {
		return "", err
	}

	byUser := make(map[string]map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		if _, ok := byUser[e.UserID]; !ok {
			byUser[e.UserID] = make(map[string]int)
			order = append(order, e.UserID)
		}
		byUser[e.UserID][e.Facet] = e.Score
	}

	facets := s.catalog.Names()
	var b strings.Builder
	b.WriteString("| User ID |")
	for _, f := range facets {
		fmt.Fprintf(&b, " %s |", facetTitle(f))
	}
	b.WriteString("\n|")
	for i := 0; i <= len(facets); i++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")
	for _, userID := range order {
		fmt.Fprintf(&b, "| `%s` |", shortID(userID))
		for _, f := range facets {
			fmt.Fprintf(&b, " %d |", byUser[userID][f])
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func shortID(userID string) string {
	if len(userID) > 6 {
		return userID[:6]
	}
	return userID
}

func facetTitle(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
