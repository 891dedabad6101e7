package service

import "errors"

// Caller-facing error taxonomy. Handlers map these to HTTP status codes;
// anything else is an internal storage failure.
var (
	ErrUnknownFacet = errors.New("unknown facet")
	ErrUserNotFound = errors.New("user has no recorded scores")
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamExists   = errors.New("team name already taken")
	ErrNoMembers    = errors.New("team has no members")
)
