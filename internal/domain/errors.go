package domain

import "net/http"

// Error is a business failure with a stable machine code. Handlers map the
// status straight onto the HTTP response; the message is safe to show to
// callers.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// Common
	ErrInvalidInput = &Error{Code: "C001", Status: http.StatusBadRequest, Message: "invalid input"}
	ErrInternal     = &Error{Code: "C002", Status: http.StatusInternalServerError, Message: "internal server error"}

	// Auth
	ErrUnauthorized = &Error{Code: "A001", Status: http.StatusUnauthorized, Message: "unauthorized"}
	ErrForbidden    = &Error{Code: "A002", Status: http.StatusForbidden, Message: "access denied"}

	// User
	ErrUserNotFound      = &Error{Code: "U001", Status: http.StatusNotFound, Message: "user not found"}
	ErrUserAlreadyExists = &Error{Code: "U002", Status: http.StatusConflict, Message: "user already exists"}

	// Player
	ErrPlayerNotFound     = &Error{Code: "P001", Status: http.StatusNotFound, Message: "player not found"}
	ErrNoPlayersAvailable = &Error{Code: "P002", Status: http.StatusNotFound, Message: "no players available for this position"}

	// Championship
	ErrChampionshipNotFound = &Error{Code: "CH001", Status: http.StatusNotFound, Message: "championship not found"}

	// Roster
	ErrRosterNotFound = &Error{Code: "R001", Status: http.StatusNotFound, Message: "roster not found"}
	ErrInvalidRoster  = &Error{Code: "R002", Status: http.StatusBadRequest, Message: "invalid roster configuration"}

	// Community
	ErrCommentNotFound = &Error{Code: "CM001", Status: http.StatusNotFound, Message: "comment not found"}

	// Report
	ErrReportNotFound = &Error{Code: "RP001", Status: http.StatusNotFound, Message: "bug report not found"}

	// Gacha
	ErrNoRerollLeft = &Error{Code: "G001", Status: http.StatusBadRequest, Message: "no reroll attempts left"}
)
