package alert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/version"
)

// Spec validation errors.
var (
	ErrEmptyText       = errors.New("alert text is empty")
	ErrMissingDuration = errors.New("alert duration is missing")
)

// Spec describes one transient notification request.
type Spec struct {
	// ID identifies the request.
	ID uuid.UUID `json:"id" yaml:"id" cbor:"1,keyasint"`

	// Version is the duration contract version the spec was written for.
	Version string `json:"version,omitempty" yaml:"version,omitempty" cbor:"2,keyasint,omitempty"`

	// Text is the notification body.
	Text string `json:"text" yaml:"text" cbor:"3,keyasint"`

	// Duration is how long the notification stays on screen.
	Duration duration.Tier `json:"duration" yaml:"duration" cbor:"4,keyasint"`

	// AutoDismiss requests dismissal after Duration. When false the
	// notification stays until dismissed by the user.
	AutoDismiss bool `json:"auto_dismiss,omitempty" yaml:"auto_dismiss,omitempty" cbor:"5,keyasint,omitempty"`

	// ButtonText labels the optional action button. Empty hides the button.
	ButtonText string `json:"button_text,omitempty" yaml:"button_text,omitempty" cbor:"6,keyasint,omitempty"`
}

// NewSpec creates a Spec with a fresh ID for the current contract version.
func NewSpec(text string, d duration.Tier) *Spec {
	return &Spec{
		ID:      uuid.New(),
		Version: version.Current,
		Text:     text,
		Duration: d,
	}
}

// Validate checks that the spec is complete and carries a sanctioned tier.
func (s *Spec) Validate() error {
	if err := version.CheckCompatible(s.Version); err != nil {
		return err
	}
	if strings.TrimSpace(s.Text) == "" {
		return ErrEmptyText
	}
	if s.Duration == 0 {
		return ErrMissingDuration
	}
	if !s.Duration.Valid() {
		return fmt.Errorf("duration: %w", duration.ErrInvalidDuration)
	}
	return nil
}

// HasButton reports whether the spec requests an action button.
func (s *Spec) HasButton() bool {
	return s.ButtonText != ""
}
