package server

import (
	"net/http"

	"github.com/danielstewart77/LeaderboardBot/internal/facet"
	"github.com/danielstewart77/LeaderboardBot/internal/handler"
	"github.com/danielstewart77/LeaderboardBot/internal/metrics"
	"github.com/danielstewart77/LeaderboardBot/internal/repository"
	"github.com/danielstewart77/LeaderboardBot/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB, catalog *facet.Catalog) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	scoreRepo := repository.NewScoreRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	scoringSvc := service.NewScoringService(scoreRepo, catalog)
	boardSvc := service.NewLeaderboardService(scoreRepo, teamRepo, catalog)
	teamSvc := service.NewTeamService(teamRepo)

	scoreHandler := handler.NewScoreHandler(scoringSvc, boardSvc)
	boardHandler := handler.NewLeaderboardHandler(boardSvc)
	teamHandler := handler.NewTeamHandler(teamSvc, boardSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.POST("/score", scoreHandler.Update)
	e.GET("/scores/:user_id", scoreHandler.GetUserScores)
	e.GET("/leaderboard", boardHandler.Get)
	e.GET("/leaderboard/markdown", boardHandler.Markdown)
	e.POST("/teams", teamHandler.Create)
	e.GET("/teams", teamHandler.List)
	e.POST("/teams/:name/members", teamHandler.AssignUser)
	e.GET("/teams/:name/scores", teamHandler.Scores)
	e.GET("/users", teamHandler.ListUsers)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
