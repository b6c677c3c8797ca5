// Package version provides the duration contract version and its embedded
// manifests.
//
// The contract version changes whenever the set of sanctioned tiers
// changes. Documents that carry a version (configuration files, alert
// specs) are accepted only when their major version matches Current.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current is the contract version implemented by this module.
const Current = "1.0"

// ContractVersion represents a parsed "major.minor" contract version.
type ContractVersion struct {
	Major uint16
	Minor uint16
}

// Parse parses a "major.minor" version string.
func Parse(s string) (ContractVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return ContractVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil || parts[0] == "" {
		return ContractVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil || parts[1] == "" {
		return ContractVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return ContractVersion{Major: uint16(major), Minor: uint16(minor)}, nil
}

// String returns the version as "major.minor".
func (v ContractVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v ContractVersion) Compatible(other ContractVersion) bool {
	return v.Major == other.Major
}

// CheckCompatible returns an error unless s parses to a version compatible
// with Current. An empty string is treated as Current.
func CheckCompatible(s string) error {
	if s == "" {
		return nil
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	current, _ := Parse(Current)
	if !current.Compatible(v) {
		return fmt.Errorf("contract version %s is not compatible with %s", v, current)
	}
	return nil
}
