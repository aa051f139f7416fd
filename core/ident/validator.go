package ident

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// DefaultLength is the identifier length used when none is configured.
const DefaultLength = 24

// ErrInvalidIdentifier is returned for identifiers that are not fixed-length hex strings.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Validator checks identifiers against a fixed-length hex pattern.
type Validator struct {
	length  int
	pattern *regexp.Regexp
}

// NewValidator creates a Validator for the configured length.
func NewValidator(cfg Config) *Validator {
	length := cfg.Length
	if length <= 0 {
		length = DefaultLength
	}
	return &Validator{
		length:  length,
		pattern: regexp.MustCompile(fmt.Sprintf(`^[A-Fa-f0-9]{%d}$`, length)),
	}
}

// Length returns the identifier length this validator accepts.
func (v *Validator) Length() int {
	return v.length
}

// Valid reports whether id is a well-formed identifier.
func (v *Validator) Valid(id string) bool {
	return v.pattern.MatchString(id)
}

// Check returns ErrInvalidIdentifier wrapped with the offending value if id is malformed.
func (v *Validator) Check(id string) error {
	if !v.Valid(id) {
		return fmt.Errorf("%w: %q (expected %d hex characters)", ErrInvalidIdentifier, id, v.length)
	}
	return nil
}

// Split breaks a whitespace separated batch into valid and invalid tokens,
// preserving input order within each group.
func (v *Validator) Split(input string) (valid, invalid []string) {
	for _, token := range strings.Fields(input) {
		if v.Valid(token) {
			valid = append(valid, token)
		} else {
			invalid = append(invalid, token)
		}
	}
	return valid, invalid
}
