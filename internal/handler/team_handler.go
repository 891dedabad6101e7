package handler

import (
	"net/http"

	"github.com/danielstewart77/LeaderboardBot/internal/service"
	"github.com/labstack/echo/v4"
)

type TeamHandler struct {
	svc    service.TeamService
	boards service.LeaderboardService
}

func NewTeamHandler(svc service.TeamService, boards service.LeaderboardService) *TeamHandler {
	return &TeamHandler{svc: svc, boards: boards}
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *TeamHandler) Create(c echo.Context) error {
	var req CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "name is required"))
	}
	team, err := h.svc.Create(c.Request().Context(), req.Name)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusCreated, TeamResponse{ID: team.ID, Name: team.Name})
}

type AssignUserRequest struct {
	UserName string `json:"user_name"`
}

type AssignUserResponse struct {
	UserName string `json:"user_name"`
	TeamName string `json:"team_name"`
}

func (h *TeamHandler) AssignUser(c echo.Context) error {
	teamName := c.Param("name")
	var req AssignUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.UserName == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "user_name is required"))
	}
	user, err := h.svc.Assign(c.Request().Context(), req.UserName, teamName)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, AssignUserResponse{
		UserName: user.Name,
		TeamName: teamName,
	})
}

type TeamListResponse struct {
	Teams []string `json:"teams"`
}

func (h *TeamHandler) List(c echo.Context) error {
	teams, err := h.svc.ListTeams(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	resp := TeamListResponse{Teams: make([]string, 0, len(teams))}
	for _, t := range teams {
		resp.Teams = append(resp.Teams, t.Name)
	}
	return c.JSON(http.StatusOK, resp)
}

type UserListResponse struct {
	Users []string `json:"users"`
}

func (h *TeamHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	resp := UserListResponse{Users: make([]string, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, u.Name)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *TeamHandler) Scores(c echo.Context) error {
	scores, err := h.boards.TeamScores(c.Request().Context(), c.Param("name"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, scores)
}
