package config

import (
	"errors"
	"fmt"
	"time"

	"daterelative/internal/relative"
	"daterelative/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Options holds the runtime settings of one plugin invocation.
// Every field has a default that reproduces the plain stdin-to-stdout contract.
type Options struct {
	// Now overrides the current instant (RFC 3339). Empty means the wall clock.
	// It is parsed once, by ResolveNow.
	Now string

	// Mode is the day counting mode, see relative.Mode
	Mode string `validate:"required,oneof=elapsed calendar"`

	// HostHints applies the width and color keys the host sends with each task.
	// Off by default so only the date keys are consulted.
	HostHints bool

	// Verbose enables debug logging on stderr
	Verbose bool
}

// DefaultOptions returns options for a plain invocation
func DefaultOptions() Options {
	return Options{
		Mode: string(relative.ModeElapsed),
	}
}

// Validate checks the options and converts validator failures into
// errors that carry a suggestion for the user. Now is checked by ResolveNow.
func (o Options) Validate() error {
	validate := validator.New()
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, fieldErr := range validationErrs {
		if fieldErr.Field() == "Mode" {
			return utils.ErrInvalidMode(o.Mode, modeNames())
		}
	}

	return fmt.Errorf("invalid options: %w", err)
}

// ResolveNow returns the instant to format against, in UTC.
// clock is consulted only when no override is set.
func (o Options) ResolveNow(clock func() time.Time) (time.Time, error) {
	if o.Now == "" {
		return clock().UTC(), nil
	}

	now, err := time.Parse(time.RFC3339, o.Now)
	if err != nil {
		return time.Time{}, utils.ErrInvalidNow(o.Now)
	}
	return now.UTC(), nil
}

// Formatter builds the relative date formatter for these options
func (o Options) Formatter() relative.Formatter {
	return relative.NewFormatter(relative.Mode(o.Mode))
}

func modeNames() []string {
	names := make([]string, 0, len(relative.Modes))
	for _, mode := range relative.Modes {
		names = append(names, string(mode))
	}
	return names
}
