package errors

import "net/http"

const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeNotFound              = "NOT_FOUND"
	CodeDependencyUnavailable = "DEPENDENCY_UNAVAILABLE"
	CodeInternal              = "INTERNAL_SERVER_ERROR"
)

var (
	ErrTreeNotFound = New(
		CodeNotFound,
		"Tree not found",
		http.StatusNotFound,
	)

	ErrInvalidTreeID = New(
		CodeValidation,
		"Invalid tree id",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		CodeDependencyUnavailable,
		"Database unavailable",
		http.StatusServiceUnavailable,
	)

	ErrCacheUnavailable = New(
		CodeDependencyUnavailable,
		"Cache unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// Сообщения валидации поискового запроса
const (
	MsgNearestCombined     = "Cannot combine nearest with other params"
	MsgInvalidNearest      = "Invalid nearest format"
	MsgBBoxWithRadius      = "Cannot use bbox with radius search"
	MsgInvalidCoordinates  = "Invalid coordinates format"
	MsgRadiusNotPositive   = "Radius must be positive"
	MsgBBoxCombined        = "Cannot combine bbox with other spatial params"
	MsgBBoxValueCount      = "bbox must have 4 values"
	MsgBBoxNotNumeric      = "bbox values must be numbers"
	MsgNoSearchMode        = "Provide bbox, coordinates+radius, or nearest"
	MsgCoordinatesRange    = "Coordinates out of range"
	MsgRadiusNotNumeric    = "radius must be a number"
	MsgCountNotInteger     = "count must be an integer"
	MsgLimitNotInteger     = "limit must be an integer"
	MsgOffsetNotInteger    = "offset must be an integer"
	MsgMinHeightNotInteger = "min_height must be an integer"
	MsgMaxHeightNotInteger = "max_height must be an integer"
)
