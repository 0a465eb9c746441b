package errors

import "net/http"

var (
	ErrRestaurantNotFound = New(
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		http.StatusNotFound,
	)

	ErrInvalidRestaurantID = New(
		"INVALID_RESTAURANT_ID",
		"Invalid restaurant ID format",
		http.StatusBadRequest,
	)

	ErrInvalidCuisine = New(
		"INVALID_CUISINE",
		"Invalid cuisine type",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrValidationFailed = New(
		"VALIDATION_FAILED",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
