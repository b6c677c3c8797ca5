package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes audit events to an slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level for accepted values and Warn level
// otherwise.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("request_id", event.RequestID),
		slog.String("source", event.Source.String()),
		slog.String("outcome", event.Outcome.String()),
		slog.Int64("raw_ms", event.Raw),
	}

	if event.Tier != nil {
		attrs = append(attrs, slog.String("tier", event.Tier.String()))
	}
	if event.Preset != "" {
		attrs = append(attrs, slog.String("preset", event.Preset))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	level := slog.LevelDebug
	if event.Outcome != OutcomeAccepted {
		level = slog.LevelWarn
	}

	a.logger.LogAttrs(context.Background(), level, "duration admission", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
