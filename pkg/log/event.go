package log

import (
	"time"

	"github.com/bella-notify/bella-go/pkg/duration"
)

// Event records one admission of a raw duration magnitude.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the admission happened (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// RequestID uniquely identifies the admission (UUID).
	RequestID string `cbor:"2,keyasint"`

	// Source is the boundary the raw value entered through.
	Source Source `cbor:"3,keyasint"`

	// Outcome of the admission.
	Outcome Outcome `cbor:"4,keyasint"`

	// Raw is the magnitude as supplied by the caller, in milliseconds.
	Raw int64 `cbor:"5,keyasint"`

	// Tier is the admitted tier. Nil when rejected.
	Tier *duration.Tier `cbor:"6,keyasint,omitempty"`

	// Preset is the preset name, for preset lookups.
	Preset string `cbor:"7,keyasint,omitempty"`

	// Error is the rejection reason (also set for fallbacks).
	Error string `cbor:"8,keyasint,omitempty"`
}

// Source identifies where a raw magnitude entered the system.
type Source uint8

const (
	// SourceAPI is a public API argument.
	SourceAPI Source = 0
	// SourceConfig is a value from a configuration file.
	SourceConfig Source = 1
	// SourceWire is a decoded wire payload.
	SourceWire Source = 2
	// SourceCLI is a command-line or interactive input.
	SourceCLI Source = 3
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceAPI:
		return "API"
	case SourceConfig:
		return "CONFIG"
	case SourceWire:
		return "WIRE"
	case SourceCLI:
		return "CLI"
	default:
		return "UNKNOWN"
	}
}

// Outcome is the result of an admission.
type Outcome uint8

const (
	// OutcomeAccepted indicates the raw value was a sanctioned magnitude.
	OutcomeAccepted Outcome = 0
	// OutcomeRejected indicates the raw value was refused.
	OutcomeRejected Outcome = 1
	// OutcomeFallback indicates the raw value was refused and replaced by
	// the configured fallback tier.
	OutcomeFallback Outcome = 2
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeAccepted:
		return "ACCEPTED"
	case OutcomeRejected:
		return "REJECTED"
	case OutcomeFallback:
		return "FALLBACK"
	default:
		return "UNKNOWN"
	}
}
