package services

import "errors"

// Shared errors of the service layer, mapped to HTTP statuses by the
// handlers.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Setup validation
	ErrTournamentNameRequired = errors.New("tournament name cannot be empty")
	ErrTournamentNameTooShort = errors.New("tournament name must be at least 3 characters")
	ErrInvalidFormat          = errors.New("format must be singles or doubles")
	ErrInvalidFixtureType     = errors.New("fixture type must be wpl or roundrobin")
	ErrPlayerNameRequired     = errors.New("all player names must be filled")
	ErrPlayerNamesNotUnique   = errors.New("all player names must be unique")
	ErrTooFewPlayers          = errors.New("not enough players for the chosen format")
	ErrOddPlayersForDoubles   = errors.New("number of players must be even for doubles")

	// Lifecycle
	ErrTournamentNotFound  = errors.New("tournament not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrTournamentFinished  = errors.New("tournament is already finished")
	ErrMatchesStillOpen    = errors.New("all matches must be completed before finishing")
	ErrTournamentCorrupted = errors.New("stored tournament data is unreadable")

	ErrSportNotFound = errors.New("sport not found")
	ErrSportLocked   = errors.New("sport is not available yet")
)
