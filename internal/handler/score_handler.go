package handler

import (
	"net/http"

	"github.com/danielstewart77/LeaderboardBot/internal/service"
	"github.com/labstack/echo/v4"
)

type ScoreHandler struct {
	scoring service.ScoringService
	boards  service.LeaderboardService
}

func NewScoreHandler(scoring service.ScoringService, boards service.LeaderboardService) *ScoreHandler {
	return &ScoreHandler{scoring: scoring, boards: boards}
}

type UpdateScoreRequest struct {
	UserID string `json:"user_id"`
	Facet  string `json:"facet"`
	Amount *int   `json:"amount"`
}

type UpdateScoreResponse struct {
	UserID string `json:"user_id"`
	Facet  string `json:"facet"`
	Score  int    `json:"score"`
}

func (h *ScoreHandler) Update(c echo.Context) error {
	var req UpdateScoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if req.UserID == "" || req.Facet == "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "user_id and facet are required"))
	}
	score, err := h.scoring.Award(c.Request().Context(), req.UserID, req.Facet, req.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, UpdateScoreResponse{
		UserID: req.UserID,
		Facet:  req.Facet,
		Score:  score,
	})
}

type UserScoresResponse struct {
	UserID string               `json:"user_id"`
	Scores []service.FacetScore `json:"scores"`
	Total  int                  `json:"total"`
}

func (h *ScoreHandler) GetUserScores(c echo.Context) error {
	userID := c.Param("user_id")
	scores, total, err := h.boards.UserScores(c.Request().Context(), userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, UserScoresResponse{
		UserID: userID,
		Scores: scores,
		Total:  total,
	})
}
