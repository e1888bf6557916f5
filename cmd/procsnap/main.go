// procsnap inspects the live OpenBSD process table through sysctl(2): full
// process listings, per-process argument vectors, and liveness checks.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mrzor/procsnap/internal/config"
	"github.com/mrzor/procsnap/internal/filter"
	"github.com/mrzor/procsnap/internal/kern"
	"github.com/mrzor/procsnap/internal/output"
	"github.com/mrzor/procsnap/internal/procmeta"
)

// Version information injected by GoReleaser at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		logrus.Fatalf("Error: %v", err)
	}
}

// setupLogging configures logrus from the environment config, with the
// verbose flag overriding the configured level.
func setupLogging(envCfg *config.EnvConfig, verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	level, err := logrus.ParseLevel(envCfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

// pickFormatter resolves the output format: the --json flag wins, then the
// PROCSNAP_FORMAT environment default.
func pickFormatter(cfg *config.Config, envCfg *config.EnvConfig) (output.Formatter, error) {
	format := envCfg.Format
	if cfg.JSON {
		format = "json"
	}
	return output.New(format, envCfg.NoColor)
}

// runList snapshots the process table, applies the optional filter, and
// renders the result.
func runList(cfg *config.Config, f output.Formatter) error {
	var flt *filter.Filter
	if cfg.FilterExpr != "" {
		var err error
		flt, err = filter.New(cfg.FilterExpr)
		if err != nil {
			return err
		}
	}

	mgr := procmeta.NewManager()
	collector := procmeta.NewCollector(procmeta.KernelSource{}, mgr, cfg.WithEnv)

	procs, err := collector.Snapshot()
	if err != nil {
		return err
	}
	logrus.Debugf("snapshot: %d processes", len(procs))

	if flt != nil {
		kept := procs[:0]
		for _, p := range procs {
			ok, err := flt.Match(p)
			if err != nil {
				return err
			}
			if ok {
				kept = append(kept, p)
			}
		}
		procs = kept
		logrus.Debugf("filter %q kept %d processes", flt, len(procs))
	}

	return f.Snapshot(os.Stdout, procs, mgr)
}

// runArgs reads one process's argument vector. The --raw flag selects the
// size-then-fetch protocol instead of the growth loop; both failures are
// refined into no-such-process vs access-denied before reporting.
func runArgs(cfg *config.Config, f output.Formatter) error {
	var args []string
	var err error

	if cfg.Raw {
		var raw []byte
		raw, err = kern.Cmdline(cfg.PID)
		if err == nil {
			args, err = decodeRawArgs(raw)
		}
	} else {
		args, err = kern.CmdlineSlice(cfg.PID)
	}
	if err != nil {
		return kern.RefineLookupError(cfg.PID, err)
	}

	return f.Args(os.Stdout, cfg.PID, args)
}

// decodeRawArgs turns a raw argument buffer into strings. The kernel hands
// back a zero-length buffer for processes with no readable arguments, for
// example system threads; that is an empty vector, not a decoding failure.
func decodeRawArgs(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	return kern.ParseArgv(raw)
}

// runCheck prints the liveness verdict for a pid.
func runCheck(cfg *config.Config, f output.Formatter) error {
	return f.Verdict(os.Stdout, cfg.PID, kern.Probe(cfg.PID))
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	if cfg.Mode == config.ModeVersion {
		fmt.Printf("procsnap %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	envCfg, err := config.ParseEnvConfig()
	if err != nil {
		return err
	}
	setupLogging(envCfg, cfg.Verbose)

	formatter, err := pickFormatter(cfg, envCfg)
	if err != nil {
		return err
	}

	switch cfg.Mode {
	case config.ModeList:
		return runList(cfg, formatter)
	case config.ModeArgs:
		return runArgs(cfg, formatter)
	case config.ModeCheck:
		return runCheck(cfg, formatter)
	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}
