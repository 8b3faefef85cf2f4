package config

import "github.com/ayoisaiah/hourclock/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errReadEnvFile = &apperr.Error{
		Message: "reading env file %s failed",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s must be a valid hex color code (e.g. #444444), got %s",
	}

	errInvalidChartSize = &apperr.Error{
		Message: "chart size must be between %d and %d pixels, got %d",
	}

	errInvalidRadius = &apperr.Error{
		Message: "radii must satisfy 0 <= inner (%d) < outer (%d) <= chart size / 2 (%d)",
	}

	errInvalidPort = &apperr.Error{
		Message: "server port must be between 1 and 65535, got %d",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level %q (expected debug, info, warn or error)",
	}

	errEmptyPNGFile = &apperr.Error{
		Message: "export png file name cannot be empty",
	}
)
