package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// WithEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not
// an error. It must run before WithViperConfig for the values to apply.
func WithEnvFile(path string) Option {
	return func(_ *Config) error {
		if path == "" {
			return nil
		}

		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return errReadEnvFile.Fmt(path).Wrap(err)
		}

		return nil
	}
}
