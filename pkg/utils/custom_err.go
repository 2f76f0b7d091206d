package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidRating          = errors.New("rating must be between 1 and 5")
	ErrIndexOutOfRange        = errors.New("day or section index out of range")
	ErrNoCurrentItinerary     = errors.New("no itinerary is loaded")
	ErrPlanNotFound           = errors.New("stored plan not found")
	ErrInvalidDocument        = errors.New("invalid itinerary document")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrSupersededRequest      = errors.New("request superseded by a newer one")
	ErrDatabaseError          = errors.New("database error")
	ErrTooManyRequests        = errors.New("too many requests")
)
