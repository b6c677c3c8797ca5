// Package alert describes notification requests and admits their durations.
//
// A Spec is what a caller hands to the notification subsystem: the text,
// an optional action button, and the duration tier. Rendering, timing and
// dismissal live elsewhere; this package only guarantees that every Spec it
// produces carries a sanctioned duration.Tier.
//
// Specs arrive as YAML, JSON or CBOR documents. Each decoder validates the
// result, so a document with an unsanctioned duration fails with an error
// matching duration.ErrInvalidDuration.
//
// Gate is the policy point for raw integers. It applies the configured
// reject/fallback policy, records an audit event for every admission, and
// optionally counts admissions.
package alert
