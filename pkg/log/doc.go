// Package log provides the admission audit trail for duration values.
//
// Every time an untrusted magnitude is turned into a duration.Tier at a
// system boundary, the caller records an Event: where the value came
// from, what it was, and whether it was accepted, rejected, or replaced by
// a fallback tier. This trail is separate from operational logging (slog);
// it is a machine-readable record for later analysis.
//
// # Basic Usage
//
//	// Development: print events via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Production: append to a binary file
//	fl, _ := log.NewFileLogger("/var/log/bella/audit.blog")
//
//	// Both
//	logger := log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Audit files are a sequence of CBOR-encoded events with integer keys
// (.blog extension). Use NewReader or NewFilteredReader to stream them
// back; the bella-tier audit command prints them.
package log
