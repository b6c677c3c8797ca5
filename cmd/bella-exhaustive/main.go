// Command bella-exhaustive reports switch statements over duration.Tier that
// do not handle every tier.
//
// Usage:
//
//	bella-exhaustive [-type pkg/path.Type] ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/bella-notify/bella-go/pkg/duration/exhaustive"
)

func main() {
	singlechecker.Main(exhaustive.Analyzer)
}
