package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bella-notify/bella-go/pkg/duration"
	"github.com/bella-notify/bella-go/pkg/log"
)

// Admitter turns raw magnitudes and preset names into tiers.
// *alert.Gate satisfies it.
type Admitter interface {
	Admit(source log.Source, raw int64) (duration.Tier, error)
	AdmitPreset(source log.Source, name string) (duration.Tier, error)
}

// CheckResult summarizes a check run.
type CheckResult struct {
	Checked  int
	Rejected int
}

// RunCheck admits each argument and writes one line per argument.
// Integer arguments are raw magnitudes; anything else is a preset name.
func RunCheck(gate Admitter, args []string, w io.Writer) CheckResult {
	var res CheckResult
	for _, arg := range args {
		res.Checked++
		line, ok := CheckOne(gate, log.SourceCLI, arg)
		if !ok {
			res.Rejected++
		}
		fmt.Fprintln(w, line)
	}
	return res
}

// CheckOne admits a single argument and formats the result.
func CheckOne(gate Admitter, source log.Source, arg string) (string, bool) {
	arg = strings.TrimSpace(arg)

	var (
		tier duration.Tier
		err  error
	)
	if raw, perr := strconv.ParseInt(arg, 10, 64); perr == nil {
		tier, err = gate.Admit(source, raw)
	} else {
		tier, err = gate.AdmitPreset(source, arg)
	}
	if err != nil {
		return fmt.Sprintf("%-8s REJECTED  %v", arg, err), false
	}
	return fmt.Sprintf("%-8s %-9s %d ms", arg, tier.String(), tier.Milliseconds()), true
}
