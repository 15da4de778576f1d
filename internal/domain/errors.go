package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrAggregateQuery is returned when a product count cannot be computed.
	// The count path never answers with a guessed number.
	ErrAggregateQuery = errors.New("aggregate product query failed")

	// ErrGraphQuery is returned when enriched records cannot be fetched from the graph store
	ErrGraphQuery = errors.New("graph store query failed")

	// ErrVectorSearch is returned when the vector search collaborator fails
	ErrVectorSearch = errors.New("vector search failed")

	// ErrGenerationFailure is returned by the generation client when the model call fails
	ErrGenerationFailure = errors.New("generation request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrSessionNotFound is returned when no state is stored for a session
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionUnavailable is returned when the session store cannot be reached
	ErrSessionUnavailable = errors.New("session store unavailable")
)
