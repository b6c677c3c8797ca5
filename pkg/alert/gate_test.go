package alert

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bella-notify/bella-go/pkg/config"
	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/log"
	"github.com/bella-notify/bella-go/pkg/metrics"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(event log.Event) {
	m.Called(event)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(source log.Source, outcome log.Outcome, tier duration.Tier) {
	m.Called(source, outcome, tier)
}

// recordingLogger keeps events for inspection.
type recordingLogger struct {
	events []log.Event
}

func (r *recordingLogger) Log(event log.Event) {
	r.events = append(r.events, event)
}

func newTestGate(t *testing.T, cfg GateConfig) *Gate {
	t.Helper()
	g, err := NewGate(cfg)
	require.NoError(t, err)
	g.now = func() time.Time { return time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC) }
	return g
}

func TestGateAdmitAccepts(t *testing.T) {
	rec := &recordingLogger{}
	g := newTestGate(t, GateConfig{Logger: rec})

	for _, raw := range []int64{1000, 2000} {
		tier, err := g.Admit(log.SourceAPI, raw)
		require.NoError(t, err)
		assert.Equal(t, raw, tier.Milliseconds())
	}

	require.Len(t, rec.events, 2)
	for _, e := range rec.events {
		assert.Equal(t, log.OutcomeAccepted, e.Outcome)
		assert.Equal(t, log.SourceAPI, e.Source)
		assert.NotEmpty(t, e.RequestID)
		require.NotNil(t, e.Tier)
		assert.Equal(t, e.Raw, e.Tier.Milliseconds())
		assert.Empty(t, e.Error)
	}
	assert.NotEqual(t, rec.events[0].RequestID, rec.events[1].RequestID)
}

func TestGateRejectPolicy(t *testing.T) {
	rec := &recordingLogger{}
	g := newTestGate(t, GateConfig{Policy: config.PolicyReject, Fallback: duration.Long, Logger: rec})

	for _, raw := range []int64{-1, 0, 1500, 2001} {
		tier, err := g.Admit(log.SourceWire, raw)
		assert.ErrorIs(t, err, duration.ErrInvalidDuration, "raw=%d", raw)
		assert.False(t, tier.Valid(), "raw=%d must not fall back", raw)
	}

	require.Len(t, rec.events, 4)
	for _, e := range rec.events {
		assert.Equal(t, log.OutcomeRejected, e.Outcome)
		assert.Nil(t, e.Tier)
		assert.Contains(t, e.Error, "invalid duration")
	}
}

func TestGateFallbackPolicy(t *testing.T) {
	rec := &recordingLogger{}
	g := newTestGate(t, GateConfig{Policy: config.PolicyFallback, Fallback: duration.Long, Logger: rec})

	tier, err := g.Admit(log.SourceConfig, 1500)
	require.NoError(t, err)
	assert.Equal(t, duration.Long, tier)

	// Sanctioned values are never replaced.
	tier, err = g.Admit(log.SourceConfig, 1000)
	require.NoError(t, err)
	assert.Equal(t, duration.Short, tier)

	require.Len(t, rec.events, 2)
	assert.Equal(t, log.OutcomeFallback, rec.events[0].Outcome)
	assert.Equal(t, int64(1500), rec.events[0].Raw)
	require.NotNil(t, rec.events[0].Tier)
	assert.Equal(t, duration.Long, *rec.events[0].Tier)
	assert.Contains(t, rec.events[0].Error, "1500")
	assert.Equal(t, log.OutcomeAccepted, rec.events[1].Outcome)
}

func TestNewGateRejectsBadConfig(t *testing.T) {
	_, err := NewGate(GateConfig{Policy: config.PolicyFallback})
	assert.ErrorIs(t, err, duration.ErrInvalidDuration)

	_, err = NewGate(GateConfig{Presets: map[string]duration.Tier{"x": 0}})
	assert.ErrorIs(t, err, duration.ErrInvalidDuration)

	_, err = NewGate(GateConfig{Policy: config.Policy(7)})
	assert.Error(t, err)
}

func TestGateNilLogger(t *testing.T) {
	g, err := NewGate(GateConfig{})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		_, _ = g.Admit(log.SourceAPI, 1000)
		_, _ = g.Admit(log.SourceAPI, 3)
	})
}

func TestGateAdmitPreset(t *testing.T) {
	logger := &mockLogger{}
	logger.On("Log", mock.MatchedBy(func(e log.Event) bool {
		return e.Preset == "error" && e.Outcome == log.OutcomeAccepted && e.Raw == 2000
	})).Once()
	logger.On("Log", mock.MatchedBy(func(e log.Event) bool {
		return e.Preset == "nope" && e.Outcome == log.OutcomeRejected && e.Tier == nil
	})).Once()

	g := newTestGate(t, GateConfig{
		Policy:   config.PolicyFallback,
		Fallback: duration.Short,
		Presets:  map[string]duration.Tier{"error": duration.Long},
		Logger:   logger,
	})

	tier, err := g.AdmitPreset(log.SourceAPI, "error")
	require.NoError(t, err)
	assert.Equal(t, duration.Long, tier)

	_, err = g.AdmitPreset(log.SourceAPI, "nope")
	assert.ErrorIs(t, err, ErrUnknownPreset)

	logger.AssertExpectations(t)
}

func TestGatePresetsCopy(t *testing.T) {
	g := newTestGate(t, GateConfig{Presets: map[string]duration.Tier{"info": duration.Short}})

	p := g.Presets()
	p["info"] = duration.Long

	assert.Equal(t, duration.Short, g.Presets()["info"])
}

func TestGateRecorder(t *testing.T) {
	recorder := &mockRecorder{}
	recorder.On("Record", log.SourceCLI, log.OutcomeAccepted, duration.Short).Once()
	recorder.On("Record", log.SourceCLI, log.OutcomeRejected, duration.Tier(0)).Once()

	g := newTestGate(t, GateConfig{Recorder: recorder})
	_, _ = g.Admit(log.SourceCLI, 1000)
	_, _ = g.Admit(log.SourceCLI, 999)

	recorder.AssertExpectations(t)
}

func TestGateWithPrometheusMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	g := newTestGate(t, GateConfig{Policy: config.PolicyFallback, Fallback: duration.Short, Recorder: m})

	_, _ = g.Admit(log.SourceAPI, 2000)
	_, _ = g.Admit(log.SourceAPI, 5)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Admissions.WithLabelValues("api", "accepted", "long")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Admissions.WithLabelValues("api", "fallback", "short")))
}

func TestNewGateFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte("on_invalid: fallback\ndefault_duration: long\npresets:\n  toast: short\n"))
	require.NoError(t, err)

	g, err := NewGateFromConfig(cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.PolicyFallback, g.Policy())

	tier, err := g.Admit(log.SourceConfig, 42)
	require.NoError(t, err)
	assert.Equal(t, duration.Long, tier)

	tier, err = g.AdmitPreset(log.SourceConfig, "toast")
	require.NoError(t, err)
	assert.Equal(t, duration.Short, tier)
}
