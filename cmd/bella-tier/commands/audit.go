package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bella-notify/bella-go/pkg/log"
)

// AuditStats counts events by outcome.
type AuditStats struct {
	Total     int
	ByOutcome map[log.Outcome]int
}

// RunAudit writes every event in the audit file at path that matches filter,
// followed by a per-outcome summary.
func RunAudit(path string, filter log.Filter, w io.Writer) (*AuditStats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit file: %w", err)
	}
	defer reader.Close()

	stats := &AuditStats{ByOutcome: make(map[log.Outcome]int)}
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.Total++
		stats.ByOutcome[event.Outcome]++
		formatEvent(w, event)
	}

	fmt.Fprintf(w, "\n%d events", stats.Total)
	for _, o := range []log.Outcome{log.OutcomeAccepted, log.OutcomeRejected, log.OutcomeFallback} {
		if n := stats.ByOutcome[o]; n > 0 {
			fmt.Fprintf(w, ", %s: %d", o, n)
		}
	}
	fmt.Fprintln(w)

	return stats, nil
}

// formatEvent writes a one-line representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	tier := "-"
	if event.Tier != nil {
		tier = event.Tier.String()
	}

	fmt.Fprintf(w, "%s [req:%s] %-6s %-8s raw=%d tier=%s",
		ts, shortenRequestID(event.RequestID), event.Source, event.Outcome, event.Raw, tier)
	if event.Preset != "" {
		fmt.Fprintf(w, " preset=%s", event.Preset)
	}
	if event.Error != "" {
		fmt.Fprintf(w, " error=%q", event.Error)
	}
	fmt.Fprintln(w)
}

// shortenRequestID returns the first 8 characters of the request ID.
func shortenRequestID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseSourceFlag parses a source string from command-line flag (case-insensitive).
func ParseSourceFlag(s string) (log.Source, error) {
	switch strings.ToLower(s) {
	case "api":
		return log.SourceAPI, nil
	case "config":
		return log.SourceConfig, nil
	case "wire":
		return log.SourceWire, nil
	case "cli":
		return log.SourceCLI, nil
	default:
		return 0, fmt.Errorf("invalid source: %s (must be api, config, wire, or cli)", s)
	}
}

// ParseOutcomeFlag parses an outcome string from command-line flag (case-insensitive).
func ParseOutcomeFlag(s string) (log.Outcome, error) {
	switch strings.ToLower(s) {
	case "accepted":
		return log.OutcomeAccepted, nil
	case "rejected":
		return log.OutcomeRejected, nil
	case "fallback":
		return log.OutcomeFallback, nil
	default:
		return 0, fmt.Errorf("invalid outcome: %s (must be accepted, rejected, or fallback)", s)
	}
}
