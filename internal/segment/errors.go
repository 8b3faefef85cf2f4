package segment

import "github.com/ayoisaiah/hourclock/internal/apperr"

var (
	errEmptyField = &apperr.Error{
		Message: "%s is required",
	}

	errZeroDuration = &apperr.Error{
		Message: "duration must be greater than zero seconds (start %s, end %s)",
	}

	errInvalidColor = &apperr.Error{
		Message: "color must be a hex code such as #60a5fa, got %q",
	}
)

// ErrEmptyField reports a missing label, start or end value.
var ErrEmptyField = errEmptyField

// ErrZeroDuration reports a segment whose start and end coincide.
var ErrZeroDuration = errZeroDuration

// ErrInvalidColor reports a malformed color value.
var ErrInvalidColor = errInvalidColor
