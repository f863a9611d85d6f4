// Package errors provides coded domain errors shared across the service.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Session errors
	CodeSessionMissing     Code = "SESSION_MISSING"
	CodeSessionInvalid     Code = "SESSION_INVALID"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"

	// Game errors
	CodeGameLocked         Code = "GAME_LOCKED"
	CodeStageResultInvalid Code = "STAGE_RESULT_INVALID"
	CodePlayStageInvalid   Code = "PLAY_STAGE_INVALID"

	// Storage errors
	CodeNotFound       Code = "NOT_FOUND"
	CodeStorageFailure Code = "STORAGE_FAILURE"
)
