package duration

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is matched by every error reporting a value outside the
// sanctioned tier set.
var ErrInvalidDuration = errors.New("invalid duration")

// Sanctioned magnitudes in milliseconds.
const (
	// ShortMillis is the magnitude of Short.
	ShortMillis int64 = 1000

	// LongMillis is the magnitude of Long.
	LongMillis int64 = 2000
)

// Tier is a sanctioned notification duration.
// The zero value is not a sanctioned tier.
type Tier uint8

const (
	// Short keeps the notification on screen for 1000 ms.
	Short Tier = iota + 1

	// Long keeps the notification on screen for 2000 ms.
	Long
)

// InvalidDurationError reports a raw magnitude that matches no tier.
type InvalidDurationError struct {
	Raw int64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration: %d ms (want %d or %d)", e.Raw, ShortMillis, LongMillis)
}

// Is reports whether target is ErrInvalidDuration.
func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

// FromMilliseconds returns the tier whose magnitude is exactly raw.
func FromMilliseconds(raw int64) (Tier, error) {
	switch raw {
	case ShortMillis:
		return Short, nil
	case LongMillis:
		return Long, nil
	default:
		return 0, &InvalidDurationError{Raw: raw}
	}
}

// ParseTier parses a tier name ("short", "long", any case) or a decimal
// sanctioned magnitude ("1000", "2000").
func ParseTier(s string) (Tier, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "short":
		return Short, nil
	case "long":
		return Long, nil
	}

	raw, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is neither a tier name nor a magnitude", ErrInvalidDuration, s)
	}
	return FromMilliseconds(raw)
}

// Tiers returns every sanctioned tier in ascending order of magnitude.
func Tiers() []Tier {
	return []Tier{Short, Long}
}

// Valid reports whether t is a sanctioned tier.
func (t Tier) Valid() bool {
	return t == Short || t == Long
}

// Milliseconds returns the magnitude of t.
func (t Tier) Milliseconds() int64 {
	switch t {
	case Short:
		return ShortMillis
	case Long:
		return LongMillis
	default:
		return 0
	}
}

// Duration returns the magnitude of t as a time.Duration.
func (t Tier) Duration() time.Duration {
	return time.Duration(t.Milliseconds()) * time.Millisecond
}

// Compare returns -1, 0 or +1 depending on whether t is shorter than, equal
// to, or longer than other.
func (t Tier) Compare(other Tier) int {
	a, b := t.Milliseconds(), other.Milliseconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case Short:
		return "SHORT"
	case Long:
		return "LONG"
	default:
		return "UNKNOWN"
	}
}

// name is the lower-case form used by the text and YAML encodings.
func (t Tier) name() (string, error) {
	if !t.Valid() {
		return "", fmt.Errorf("%w: tier %d", ErrInvalidDuration, uint8(t))
	}
	return strings.ToLower(t.String()), nil
}
