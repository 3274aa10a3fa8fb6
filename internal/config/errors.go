package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProfileNotFound indicates that a non-default profile was requested but
// none of the candidate configuration locations exist. Use errors.Is with
// this sentinel; the concrete error is a [*ProfileNotFoundError] carrying
// the checked paths.
var ErrProfileNotFound = errors.New("configuration profile not found")

// ProfileNotFoundError reports a non-default profile with zero existing
// configuration file locations. Checked holds every candidate path that was
// considered, in discovery order, whether or not it existed.
type ProfileNotFoundError struct {
	Profile string
	Checked []string
}

func (e *ProfileNotFoundError) Error() string {
	return fmt.Sprintf("configuration profile %q not found, checked: %s",
		e.Profile, strings.Join(e.Checked, ", "))
}

func (e *ProfileNotFoundError) Is(target error) bool {
	return target == ErrProfileNotFound
}
