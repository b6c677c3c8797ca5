package duration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// MarshalText encodes t as its lower-case name.
func (t Tier) MarshalText() ([]byte, error) {
	n, err := t.name()
	if err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalText accepts anything ParseTier accepts.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as its integer magnitude.
func (t Tier) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: tier %d", ErrInvalidDuration, uint8(t))
	}
	return strconv.AppendInt(nil, t.Milliseconds(), 10), nil
}

// UnmarshalJSON accepts an integer magnitude or a tier name string.
// A JSON null leaves t unchanged.
func (t *Tier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
		return t.UnmarshalText([]byte(s))
	}

	raw, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer", ErrInvalidDuration, data)
	}
	v, err := FromMilliseconds(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as its lower-case name.
func (t Tier) MarshalYAML() (any, error) {
	return t.name()
}

// UnmarshalYAML accepts an integer magnitude or a tier name.
func (t *Tier) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: expected a scalar", value.Line, ErrInvalidDuration)
	}

	var (
		v   Tier
		err error
	)
	if value.Tag == "!!int" {
		var raw int64
		if err := value.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: %w: %v", value.Line, ErrInvalidDuration, err)
		}
		v, err = FromMilliseconds(raw)
	} else {
		v, err = ParseTier(value.Value)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}

	*t = v
	return nil
}

// MarshalCBOR encodes t as an unsigned integer magnitude.
func (t Tier) MarshalCBOR() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: tier %d", ErrInvalidDuration, uint8(t))
	}
	return cbor.Marshal(uint64(t.Milliseconds()))
}

// UnmarshalCBOR decodes an integer magnitude.
func (t *Tier) UnmarshalCBOR(data []byte) error {
	var raw int64
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}
	v, err := FromMilliseconds(raw)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Compile-time interface satisfaction checks.
var (
	_ json.Marshaler   = Tier(0)
	_ json.Unmarshaler = (*Tier)(nil)
	_ yaml.Marshaler   = Tier(0)
	_ yaml.Unmarshaler = (*Tier)(nil)
	_ cbor.Marshaler   = Tier(0)
	_ cbor.Unmarshaler = (*Tier)(nil)
)
