package alert

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bella-notify/bella-go/pkg/config"
	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/log"
)

// ErrUnknownPreset is returned by AdmitPreset for names with no configured tier.
var ErrUnknownPreset = errors.New("unknown preset")

// Recorder counts admissions. *metrics.Metrics satisfies it.
type Recorder interface {
	Record(source log.Source, outcome log.Outcome, tier duration.Tier)
}

// GateConfig configures a Gate.
type GateConfig struct {
	// Policy selects reject or fallback for unsanctioned magnitudes.
	Policy config.Policy

	// Fallback is the tier substituted under PolicyFallback.
	Fallback duration.Tier

	// Presets maps notification kinds to tiers.
	Presets map[string]duration.Tier

	// Logger receives one audit event per admission. Nil disables auditing.
	Logger log.Logger

	// Recorder counts admissions. Nil disables counting.
	Recorder Recorder
}

// Gate admits raw magnitudes into duration.Tier under a policy.
// A Gate is immutable after construction and safe for concurrent use if its
// Logger and Recorder are.
type Gate struct {
	policy   config.Policy
	fallback duration.Tier
	presets  map[string]duration.Tier
	logger   log.Logger
	recorder Recorder

	now func() time.Time
}

// NewGate creates a Gate. A fallback policy requires a sanctioned fallback tier.
func NewGate(cfg GateConfig) (*Gate, error) {
	switch cfg.Policy {
	case config.PolicyReject:
	case config.PolicyFallback:
		if !cfg.Fallback.Valid() {
			return nil, fmt.Errorf("fallback policy: %w", duration.ErrInvalidDuration)
		}
	default:
		return nil, fmt.Errorf("unknown policy %d", cfg.Policy)
	}

	presets := make(map[string]duration.Tier, len(cfg.Presets))
	for name, tier := range cfg.Presets {
		if !tier.Valid() {
			return nil, fmt.Errorf("preset %s: %w", name, duration.ErrInvalidDuration)
		}
		presets[name] = tier
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NoopLogger{}
	}

	return &Gate{
		policy:   cfg.Policy,
		fallback: cfg.Fallback,
		presets:  presets,
		logger:   logger,
		recorder: cfg.Recorder,
		now:      time.Now,
	}, nil
}

// NewGateFromConfig creates a Gate from loaded configuration.
func NewGateFromConfig(cfg *config.Config, logger log.Logger, recorder Recorder) (*Gate, error) {
	return NewGate(GateConfig{
		Policy:   cfg.OnInvalid,
		Fallback: cfg.DefaultDuration,
		Presets:  cfg.Presets,
		Logger:   logger,
		Recorder: recorder,
	})
}

// Policy returns the configured policy.
func (g *Gate) Policy() config.Policy {
	return g.policy
}

// Admit turns a raw magnitude from source into a tier.
//
// Under PolicyReject an unsanctioned magnitude returns the error from
// duration.FromMilliseconds. Under PolicyFallback it returns the fallback
// tier and no error; the audit event still records the rejection reason.
func (g *Gate) Admit(source log.Source, raw int64) (duration.Tier, error) {
	event := log.Event{
		Timestamp: g.now(),
		RequestID: uuid.NewString(),
		Source:    source,
		Raw:       raw,
	}

	tier, err := duration.FromMilliseconds(raw)
	switch {
	case err == nil:
		event.Outcome = log.OutcomeAccepted
	case g.policy == config.PolicyFallback:
		event.Outcome = log.OutcomeFallback
		event.Error = err.Error()
		tier, err = g.fallback, nil
	default:
		event.Outcome = log.OutcomeRejected
		event.Error = err.Error()
	}

	g.emit(event, tier)
	return tier, err
}

// AdmitPreset returns the tier configured for a named preset.
// Unknown names are always rejected; the fallback policy applies only to
// raw magnitudes.
func (g *Gate) AdmitPreset(source log.Source, name string) (duration.Tier, error) {
	event := log.Event{
		Timestamp: g.now(),
		RequestID: uuid.NewString(),
		Source:    source,
		Preset:    name,
	}

	tier, ok := g.presets[name]
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		event.Outcome = log.OutcomeRejected
		event.Error = err.Error()
		g.emit(event, 0)
		return 0, err
	}

	event.Raw = tier.Milliseconds()
	event.Outcome = log.OutcomeAccepted
	g.emit(event, tier)
	return tier, nil
}

// Presets returns a copy of the configured presets.
func (g *Gate) Presets() map[string]duration.Tier {
	out := make(map[string]duration.Tier, len(g.presets))
	for k, v := range g.presets {
		out[k] = v
	}
	return out
}

func (g *Gate) emit(event log.Event, tier duration.Tier) {
	if tier.Valid() {
		event.Tier = &tier
	}
	g.logger.Log(event)
	if g.recorder != nil {
		g.recorder.Record(event.Source, event.Outcome, tier)
	}
}
