package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrUnknownDriver = fmt.Errorf("unknown storage driver")

	// Schema errors
	ErrNoMigrations = fmt.Errorf("no migrations applied")

	// Store lifecycle errors
	ErrNotReady        = fmt.Errorf("store not hydrated")
	ErrAlreadyHydrated = fmt.Errorf("store already hydrated")

	// Lookup errors
	ErrNotFound         = fmt.Errorf("not found")
	ErrTaskNotFound     = fmt.Errorf("task %w", ErrNotFound)
	ErrGoalNotFound     = fmt.Errorf("goal %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrThemeNotFound    = fmt.Errorf("theme %w", ErrNotFound)
	ErrProtectedTheme   = fmt.Errorf("built-in theme cannot be deleted")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
