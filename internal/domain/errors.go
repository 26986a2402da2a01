package domain

import "errors"

var (
	ErrUnknownAirline    = errors.New("unknown airline")
	ErrUnknownCity       = errors.New("unknown city")
	ErrUnknownCabinClass = errors.New("unknown cabin class")
	ErrInvalidStops      = errors.New("stops must be 0, 1 or 2")
	ErrSameCity          = errors.New("origin and destination cities must differ")
	ErrDepartureInPast   = errors.New("departure date must be today or later")
)

// IsValidationError reports whether err is caused by bad user input.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrUnknownAirline,
		ErrUnknownCity,
		ErrUnknownCabinClass,
		ErrInvalidStops,
		ErrSameCity,
		ErrDepartureInPast,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
