package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy decides what a boundary does with a magnitude outside the
// sanctioned tier set.
type Policy uint8

const (
	// PolicyReject surfaces the error to the caller.
	PolicyReject Policy = 0

	// PolicyFallback substitutes the configured default tier.
	PolicyFallback Policy = 1
)

// String returns the policy name as used in configuration files.
func (p Policy) String() string {
	switch p {
	case PolicyReject:
		return "reject"
	case PolicyFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ParsePolicy parses a policy name.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return PolicyReject, nil
	case "fallback":
		return PolicyFallback, nil
	default:
		return 0, fmt.Errorf("unknown policy: %s (use: reject, fallback)", s)
	}
}

// MarshalYAML encodes the policy name.
func (p Policy) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML decodes a policy name.
func (p *Policy) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParsePolicy(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = v
	return nil
}
