// Package duration implements the notification duration contract.
//
// A transient notification stays on screen for one of a closed set of
// sanctioned tiers. Each tier carries a fixed millisecond magnitude:
//
//	Short  1000 ms
//	Long   2000 ms
//
// # Construction
//
// Code holding a Tier can rely on it being sanctioned. Untrusted integers
// (API arguments, decoded configuration, wire payloads) enter through
// FromMilliseconds, which is the only way to turn a raw magnitude into a
// Tier. Any other value is rejected with an *InvalidDurationError that
// matches ErrInvalidDuration. The constructor never substitutes a default;
// whether to reject the enclosing request or fall back to a documented tier
// is the caller's decision.
//
// # Encoding
//
// Tier implements the text, JSON, YAML and CBOR codec interfaces. Every
// decoder routes through the same validation, so a document carrying 1500
// fails to decode rather than producing an unsanctioned Tier.
//
// JSON and CBOR carry the integer magnitude. Text and YAML carry the
// lower-case tier name; YAML also accepts the integer magnitude.
//
// # Closedness
//
// Go has no closed sum types. The exhaustive subpackage provides an
// analyzer that flags switch statements over Tier which omit a variant and
// have no default clause. Adding a third tier requires bumping the contract
// version in package version.
package duration
