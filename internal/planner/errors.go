package planner

import "github.com/ayoisaiah/hourclock/internal/apperr"

var (
	errSegmentNotFound = &apperr.Error{
		Message: "no segment matches %q",
	}

	errPlaceholder = &apperr.Error{
		Message: "row %s is unscheduled time; add a segment to fill it instead",
	}

	errCommit = &apperr.Error{
		Message: "saving clock state failed",
	}

	errLoadState = &apperr.Error{
		Message: "loading clock state failed",
	}
)

// ErrSegmentNotFound is returned when a segment reference cannot be resolved.
var ErrSegmentNotFound = errSegmentNotFound

// ErrPlaceholder is returned when a mutation targets a placeholder row.
var ErrPlaceholder = errPlaceholder
