package exhaustive

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestAnalyzer(t *testing.T) {
	if err := Analyzer.Flags.Set("type", "tiers.Tier"); err != nil {
		t.Fatal(err)
	}
	defer Analyzer.Flags.Set("type", DefaultType)

	analysistest.Run(t, analysistest.TestData(), Analyzer, "a")
}
