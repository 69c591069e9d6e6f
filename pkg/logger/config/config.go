package config

import (
	"errors"
	"fmt"
)

// Levels follow zapcore.Level numbering.
const (
	DEBUG_LEVEL = iota - 1
	INFO_LEVEL
	WARN_LEVEL
	ERROR_LEVEL
	DPANIC_LEVEL
	PANIC_LEVEL
	FATAL_LEVEL
)

var ErrInvalidLogConfig = errors.New("invalid logger configuration")

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c *Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > FATAL_LEVEL {
		return fmt.Errorf("%w: level must be between %d and %d, yet %d provided",
			ErrInvalidLogConfig, DEBUG_LEVEL, FATAL_LEVEL, c.Level)
	}
	if c.TimeFormat == "" {
		return fmt.Errorf("%w: time format is empty", ErrInvalidLogConfig)
	}
	return nil
}
