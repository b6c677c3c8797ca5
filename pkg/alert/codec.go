package alert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format identifies a spec document encoding.
type Format uint8

const (
	// FormatYAML is a YAML document.
	FormatYAML Format = iota + 1
	// FormatJSON is a JSON document.
	FormatJSON
	// FormatCBOR is a CBOR map with integer keys.
	FormatCBOR
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatCBOR:
		return "cbor"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "cbor":
		return FormatCBOR, nil
	default:
		return 0, fmt.Errorf("unknown format: %s (use: yaml, json, cbor)", s)
	}
}

// DetectFormat picks the format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("cannot detect format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	cborEnc, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}
	cborDec, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// DecodeYAML decodes and validates a YAML spec.
func DecodeYAML(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode yaml spec: %w", err)
	}
	return finish(&s)
}

// DecodeJSON decodes and validates a JSON spec. Unknown fields are rejected.
func DecodeJSON(data []byte) (*Spec, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var s Spec
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode json spec: %w", err)
	}
	return finish(&s)
}

// DecodeCBOR decodes and validates a CBOR spec.
func DecodeCBOR(data []byte) (*Spec, error) {
	var s Spec
	if err := cborDec.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode cbor spec: %w", err)
	}
	return finish(&s)
}

// Decode decodes and validates a spec in the given format.
func Decode(format Format, data []byte) (*Spec, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(data)
	case FormatJSON:
		return DecodeJSON(data)
	case FormatCBOR:
		return DecodeCBOR(data)
	default:
		return nil, fmt.Errorf("unsupported format %d", format)
	}
}

// Encode validates s and encodes it in the given format.
func Encode(format Format, s *Spec) ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec: %w", err)
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		return json.MarshalIndent(s, "", "  ")
	case FormatCBOR:
		return cborEnc.Marshal(s)
	default:
		return nil, fmt.Errorf("unsupported format %d", format)
	}
}

// finish assigns a missing ID and validates.
func finish(s *Spec) (*Spec, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid spec: %w", err)
	}
	return s, nil
}
