// Package commands implements the bella-tier CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/version"
)

// RunTiers writes the sanctioned tiers in ascending order.
func RunTiers(w io.Writer) error {
	manifest, err := version.LoadCurrentManifest()
	if err != nil {
		return fmt.Errorf("failed to load contract: %w", err)
	}

	fmt.Fprintf(w, "Duration contract %s\n", manifest.Version)
	fmt.Fprintln(w, "------------------------")
	for _, tier := range duration.Tiers() {
		fmt.Fprintf(w, "  %-6s %5d ms\n", strings.ToLower(tier.String()), tier.Milliseconds())
	}
	return nil
}
