package domain

import "errors"

var (
	// ErrInvalidInput is returned when an ingredient or event carries empty or
	// malformed data (e.g. an ingredient name that is empty after normalization).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidQuantity is returned when a cart quantity is not a positive number.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidRating is returned when a rated event carries a rating outside 1-5.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidFeedbackKind is returned when a feedback event kind is not recognized.
	ErrInvalidFeedbackKind = errors.New("invalid feedback kind")

	// ErrMalformedGenerationOutput is returned when the text-generation service
	// response fails schema validation.
	ErrMalformedGenerationOutput = errors.New("malformed generation output")

	// ErrGenerationFailure is returned when the generation service keeps failing
	// after the bounded retry policy is exhausted.
	ErrGenerationFailure = errors.New("generation service failure")

	// ErrProfileNotFound is returned when no behavioral profile exists for a user.
	ErrProfileNotFound = errors.New("user profile not found")

	// ErrCacheMiss is returned when data is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)
