package version

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed contracts/*.yaml
var contractFS embed.FS

// Manifest describes the tier set sanctioned by one contract version.
type Manifest struct {
	Version     string           `yaml:"version"`
	Description string           `yaml:"description"`
	Tiers       map[string]int64 `yaml:"tiers"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Manifest)
)

// LoadManifest loads the manifest for a contract version (e.g. "1.0").
func LoadManifest(ver string) (*Manifest, error) {
	cacheMu.RLock()
	if m, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return m, nil
	}
	cacheMu.RUnlock()

	data, err := contractFS.ReadFile("contracts/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("contract version %q not found: %w", ver, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing contract %q: %w", ver, err)
	}

	cacheMu.Lock()
	cache[ver] = &m
	cacheMu.Unlock()

	return &m, nil
}

// LoadCurrentManifest loads the manifest for Current.
func LoadCurrentManifest() (*Manifest, error) {
	return LoadManifest(Current)
}

// AvailableManifests returns the version strings of all embedded manifests.
func AvailableManifests() ([]string, error) {
	entries, err := contractFS.ReadDir("contracts")
	if err != nil {
		return nil, fmt.Errorf("reading contracts directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// Magnitudes returns the sanctioned magnitudes in ascending order.
func (m *Manifest) Magnitudes() []int64 {
	out := make([]int64, 0, len(m.Tiers))
	for _, ms := range m.Tiers {
		out = append(out, ms)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
