package log

import (
	"testing"
	"time"

	"github.com/bella-notify/bella-go/pkg/duration"
)

func tierPtr(t duration.Tier) *duration.Tier { return &t }

func TestSourceString(t *testing.T) {
	tests := []struct {
		s    Source
		want string
	}{
		{SourceAPI, "API"},
		{SourceConfig, "CONFIG"},
		{SourceWire, "WIRE"},
		{SourceCLI, "CLI"},
		{Source(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{OutcomeAccepted, "ACCEPTED"},
		{OutcomeRejected, "REJECTED"},
		{OutcomeFallback, "FALLBACK"},
		{Outcome(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.o, got, tt.want)
		}
	}
}

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 10, 18, 12, 0, 0, 123456789, time.UTC)
	event := Event{
		Timestamp: ts,
		RequestID: "req-1",
		Source:    SourceWire,
		Outcome:   OutcomeAccepted,
		Raw:       2000,
		Tier:      tierPtr(duration.Long),
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}

	if !got.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, ts)
	}
	if got.Source != SourceWire || got.Outcome != OutcomeAccepted || got.Raw != 2000 {
		t.Errorf("decoded = %+v", got)
	}
	if got.Tier == nil || *got.Tier != duration.Long {
		t.Errorf("Tier = %v, want LONG", got.Tier)
	}
}

func TestEventCBORRejectedHasNoTier(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		RequestID: "req-2",
		Source:    SourceAPI,
		Outcome:   OutcomeRejected,
		Raw:       1500,
		Error:     "invalid duration: 1500 ms (want 1000 or 2000)",
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	got, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if got.Tier != nil {
		t.Errorf("Tier = %v, want nil", *got.Tier)
	}
	if got.Error != event.Error {
		t.Errorf("Error = %q, want %q", got.Error, event.Error)
	}
}

func TestDecodeEventRejectsTamperedTier(t *testing.T) {
	// A file edited to carry an unsanctioned tier must not decode.
	type rawEvent struct {
		Timestamp time.Time `cbor:"1,keyasint"`
		Tier      int64     `cbor:"6,keyasint"`
	}
	data, err := logEncMode.Marshal(rawEvent{Timestamp: time.Now(), Tier: 1500})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := DecodeEvent(data); err == nil {
		t.Error("DecodeEvent accepted an unsanctioned tier")
	}
}
