package domain

import (
	"regexp"
	"strings"
)

var nameFormat = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// PlayerInput is a partial set of mutation fields, nil means "not part of
// this operation" and is skipped, not rejected.
type PlayerInput struct {
	Name  *string
	Score *int
	ID    *int64
}

// ValidatePlayerInput checks only the fields present in the input and
// returns the accumulated messages in field order, empty when valid.
func ValidatePlayerInput(in PlayerInput) []string {
	var errs []string

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			errs = append(errs, "Name is required.")
		} else if !nameFormat.MatchString(*in.Name) {
			errs = append(errs, "Name can contain only letters, numbers, and spaces.")
		}
	}

	if in.Score != nil && *in.Score < 0 {
		errs = append(errs, "Score must be a positive number.")
	}

	if in.ID != nil && *in.ID <= 0 {
		errs = append(errs, "Id must be a positive number.")
	}

	return errs
}
