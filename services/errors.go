package services

import (
	"errors"
	"fmt"
)

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("not found")

	// Общая ошибка валидации, все ошибки полей оборачивают её
	ErrValidationFailed = errors.New("validation failed")
)

// Ошибки, специфичные для сущностей (оборачивают ErrNotFound).
var (
	ErrTeamNotFound            = fmt.Errorf("team %w", ErrNotFound)
	ErrGameNotFound            = fmt.Errorf("game %w", ErrNotFound)
	ErrTournamentNotFound      = fmt.Errorf("tournament %w", ErrNotFound)
	ErrMatchNotFound           = fmt.Errorf("match %w", ErrNotFound)
	ErrMatchTeamNotFound       = fmt.Errorf("match team %w", ErrNotFound)
	ErrTournamentMatchNotFound = fmt.Errorf("tournament match %w", ErrNotFound)
)

// Ошибки валидации входных данных.
var (
	ErrTeamNameRequired       = validationError("team name is required")
	ErrTeamRegionRequired     = validationError("team region is required")
	ErrTeamInvalidPlayerCount = validationError("player count must not be negative")

	ErrGameTitleRequired     = validationError("game title is required")
	ErrGameDeveloperRequired = validationError("game developer is required")
	ErrGameGenreRequired     = validationError("game genre is required")

	ErrTournamentNameRequired     = validationError("tournament name is required")
	ErrTournamentLocationRequired = validationError("tournament location is required")
	ErrTournamentInvalidPrize     = validationError("prize money must not be negative")
	ErrTournamentDatesRequired    = validationError("tournament start and end dates are required")
	ErrTournamentInvalidDateRange = validationError("tournament end date must not be before start date")

	ErrMatchScheduledTimeRequired = validationError("match scheduled time is required")

	ErrInvalidReference = validationError("referenced id must be positive")
)

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidationFailed, msg)
}
