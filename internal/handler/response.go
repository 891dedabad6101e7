package handler

import (
	"errors"
	"net/http"

	"github.com/danielstewart77/LeaderboardBot/internal/service"
	"github.com/labstack/echo/v4"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error errorPayload `json:"error"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: errorPayload{
			Code:    code,
			Message: message,
		},
	}
}

// serviceError maps the service error taxonomy onto HTTP responses. Anything
// outside the taxonomy is a storage failure and reported generically.
func serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownFacet):
		return c.JSON(http.StatusBadRequest, NewErrorResponse("unknown_facet", err.Error()))
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", err.Error()))
	case errors.Is(err, service.ErrTeamNotFound):
		return c.JSON(http.StatusNotFound, NewErrorResponse("team_not_found", err.Error()))
	case errors.Is(err, service.ErrNoMembers):
		return c.JSON(http.StatusNotFound, NewErrorResponse("no_members", err.Error()))
	case errors.Is(err, service.ErrTeamExists):
		return c.JSON(http.StatusConflict, NewErrorResponse("team_exists", err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "unexpected error"))
	}
}
