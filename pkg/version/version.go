// Package version identifies the countdown build and the event-log file
// format it writes.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Current is the event-log format version written by this build.
const Current = "1.0"

// Build is the tool version, overridden at link time with
// -ldflags "-X github.com/mash-protocol/countdown/pkg/version.Build=v1.2.3".
var Build = "dev"

// ErrIncompatible is returned when a log was written with a different
// major format version.
var ErrIncompatible = errors.New("incompatible format version")

// FormatVersion represents a parsed "major.minor" format version.
type FormatVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (FormatVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return FormatVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return FormatVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return FormatVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v FormatVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v FormatVersion) Compatible(other FormatVersion) bool {
	return v.Major == other.Major
}

// Check verifies that a version string found in a log file can be read by
// this build.
func Check(s string) error {
	found, err := Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	current, _ := Parse(Current)
	if !current.Compatible(found) {
		return fmt.Errorf("%w: file is %s, reader supports %d.x", ErrIncompatible, found, current.Major)
	}
	return nil
}

// String returns the one-line version banner printed by -version.
func String(tool string) string {
	return fmt.Sprintf("%s %s (event log format %s)", tool, Build, Current)
}
