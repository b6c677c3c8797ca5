// Command bella-tier inspects and validates notification durations.
//
// Usage:
//
//	bella-tier [-log-level level] <command> [flags] [args]
//
// Commands:
//
//	tiers    List the sanctioned duration tiers
//	check    Admit raw magnitudes or preset names through the gate
//	convert  Convert an alert spec between YAML, JSON and CBOR
//	audit    View an admission audit file
//	repl     Admit values interactively
//
// Examples:
//
//	# Check values with the configured policy and record an audit trail
//	bella-tier check -config bella.yaml -audit-log audit.blog 1000 1500 error
//
//	# Convert a YAML alert spec to CBOR
//	bella-tier convert -to cbor -o alert.cbor alert.yaml
//
//	# Show only rejected admissions
//	bella-tier audit -outcome rejected audit.blog
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bella-notify/bella-go/cmd/bella-tier/commands"
	"github.com/bella-notify/bella-go/cmd/bella-tier/interactive"
	"github.com/bella-notify/bella-go/pkg/alert"
	"github.com/bella-notify/bella-go/pkg/config"
	"github.com/bella-notify/bella-go/pkg/log"
	"github.com/bella-notify/bella-go/pkg/metrics"
)

const usage = `bella-tier - Notification Duration Tool

Usage:
  bella-tier [-log-level level] <command> [flags] [args]

Commands:
  tiers    List the sanctioned duration tiers
  check    Admit raw magnitudes or preset names through the gate
  convert  Convert an alert spec between YAML, JSON and CBOR
  audit    View an admission audit file
  repl     Admit values interactively

Use "bella-tier <command> -help" for more information about a command.
`

var logLevel = flag.String("log-level", "info", "Log level (debug, info, warn, error)")

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	setupLogging(*logLevel)

	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	switch cmd {
	case "tiers":
		runTiers()
	case "check":
		runCheck(args)
	case "convert":
		runConvert(args)
	case "audit":
		runAudit(args)
	case "repl":
		runREPL(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds)

	switch level {
	case "debug":
		stdlog.SetFlags(stdlog.Ltime | stdlog.Lmicroseconds | stdlog.Lshortfile)
	case "warn", "error":
		stdlog.SetFlags(stdlog.Ltime)
	}
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// gateFlags are shared by commands that admit values.
type gateFlags struct {
	config   *string
	auditLog *string
}

func addGateFlags(fs *flag.FlagSet) gateFlags {
	return gateFlags{
		config:   fs.String("config", "", "Configuration file (default: built-in reject policy)"),
		auditLog: fs.String("audit-log", "", "Append admission events to this CBOR file (overrides config)"),
	}
}

// buildGate loads configuration and wires the audit loggers. The returned
// function closes the audit file.
func buildGate(f gateFlags, recorder alert.Recorder) (*alert.Gate, func(), error) {
	cfg := config.Default()
	if *f.config != "" {
		loaded, err := config.Load(*f.config)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	auditPath := cfg.AuditLog
	if *f.auditLog != "" {
		auditPath = *f.auditLog
	}

	loggers := []log.Logger{
		log.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel(*logLevel)}))),
	}
	closeFn := func() {}
	if auditPath != "" {
		fileLogger, err := log.NewFileLogger(auditPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open audit log: %w", err)
		}
		loggers = append(loggers, fileLogger)
		closeFn = func() {
			if err := fileLogger.Close(); err != nil {
				stdlog.Printf("Warning: failed to close audit log: %v", err)
			}
		}
		stdlog.Printf("Audit log: %s", auditPath)
	}

	gate, err := alert.NewGateFromConfig(cfg, log.NewMultiLogger(loggers...), recorder)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	stdlog.Printf("Policy: %s, default duration: %s", cfg.OnInvalid, cfg.DefaultDuration)
	return gate, closeFn, nil
}

func runTiers() {
	if err := commands.RunTiers(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `bella-tier check - Admit raw magnitudes or preset names

Usage:
  bella-tier check [flags] <ms|preset>...

Integer arguments are raw magnitudes in milliseconds; anything else is looked
up as a configured preset. Exits 1 if any argument is rejected.

Flags:
`)
		fs.PrintDefaults()
	}

	gf := addGateFlags(fs)
	showMetrics := fs.Bool("metrics", false, "Print admission counters after checking")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: at least one value required")
		fs.Usage()
		os.Exit(1)
	}

	var m *metrics.Metrics
	var recorder alert.Recorder
	if *showMetrics {
		m = metrics.New(prometheus.NewRegistry())
		recorder = m
	}

	gate, closeFn, err := buildGate(gf, recorder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res := commands.RunCheck(gate, fs.Args(), os.Stdout)
	closeFn()

	if m != nil {
		fmt.Println()
		if err := m.Summary(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	if res.Rejected > 0 {
		os.Exit(1)
	}
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `bella-tier convert - Convert an alert spec

Usage:
  bella-tier convert -to <yaml|json|cbor> [-o out] <spec-file>

The input format is taken from the file extension.

Flags:
`)
		fs.PrintDefaults()
	}

	to := fs.String("to", "json", "Output format (yaml, json, cbor)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: spec file path required")
		fs.Usage()
		os.Exit(1)
	}

	format, err := alert.ParseFormat(*to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	w := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := commands.RunConvert(fs.Arg(0), format, w); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runAudit(args []string) {
	fs := flag.NewFlagSet("audit", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `bella-tier audit - View an admission audit file

Usage:
  bella-tier audit [flags] <file.blog>

Flags:
`)
		fs.PrintDefaults()
	}

	source := fs.String("source", "", "Filter by source (api, config, wire, cli)")
	outcome := fs.String("outcome", "", "Filter by outcome (accepted, rejected, fallback)")
	requestID := fs.String("request-id", "", "Filter by request ID")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: audit file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := log.Filter{RequestID: *requestID}

	if *source != "" {
		s, err := commands.ParseSourceFlag(*source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Source = &s
	}

	if *outcome != "" {
		o, err := commands.ParseOutcomeFlag(*outcome)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Outcome = &o
	}

	if _, err := commands.RunAudit(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runREPL(args []string) {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)
	gf := addGateFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	gate, closeFn, err := buildGate(gf, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeFn()

	repl, err := interactive.New(gate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	stdlog.SetOutput(repl.Stdout())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	repl.Run(ctx)
}
