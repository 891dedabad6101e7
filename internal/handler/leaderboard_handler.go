package handler

import (
	"net/http"

	"github.com/danielstewart77/LeaderboardBot/internal/service"
	"github.com/labstack/echo/v4"
)

type LeaderboardHandler struct {
	svc service.LeaderboardService
}

func NewLeaderboardHandler(svc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{svc: svc}
}

type LeaderboardResponse struct {
	Entries []service.Entry `json:"entries"`
}

func (h *LeaderboardHandler) Get(c echo.Context) error {
	entries, err := h.svc.Leaderboard(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, LeaderboardResponse{Entries: entries})
}

// Markdown renders the table the chat bot posts verbatim.
func (h *LeaderboardHandler) Markdown(c echo.Context) error {
	table, err := h.svc.RenderMarkdown(c.Request().Context())
	if err != nil {
		return serviceError(c, err)
	}
	return c.String(http.StatusOK, table)
}
