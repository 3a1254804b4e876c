// Package config holds the frozen Parameters struct every geometry and
// evaluator package reads its tolerances, discretization sizes, and
// feature flags from, plus two ways to build one: config.Default() and
// config.FromGetopt(args), a thin github.com/pborman/getopt/v2 loader.
package config

import (
	"errors"
	"regexp"
)

// ErrInvalidPrefix is returned when a configured prefix does not match
// the required GML-id-safe pattern.
var ErrInvalidPrefix = errors.New("config: prefix does not match [_A-Za-z][-_.A-Za-z0-9]*")

var prefixPattern = regexp.MustCompile(`^[_A-Za-z][-_.A-Za-z0-9]*$`)

func validatePrefix(prefix string) error {
	if !prefixPattern.MatchString(prefix) {
		return ErrInvalidPrefix
	}
	return nil
}
