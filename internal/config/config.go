package config

import (
	"fmt"
	"strconv"
)

// Run modes selected by the command line.
const (
	ModeList    = "list"    // snapshot the whole process table
	ModeArgs    = "args"    // print one process's argument vector
	ModeCheck   = "check"   // liveness/permission verdict for one pid
	ModeVersion = "version" // print version information and exit
)

// Config holds the parsed command-line configuration
type Config struct {
	// Mode is one of ModeList, ModeArgs, ModeCheck, ModeVersion
	Mode string
	// PID is the target process for ModeArgs and ModeCheck
	PID int32
	// FilterExpr is an optional process filter expression for ModeList
	FilterExpr string
	// JSON selects JSON output instead of the text table
	JSON bool
	// Raw selects the size-then-fetch argument reader in ModeArgs
	Raw bool
	// WithEnv also collects process environments in ModeList
	WithEnv bool
	// Verbose enables debug logging
	Verbose bool
}

// ParseArgs parses command-line arguments and returns a Config.
// Expected format: procsnap [flags] [list | args <pid> | check <pid>]
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	cfg := &Config{Mode: ModeList}

	var positional []string
	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-j", "--json":
			cfg.JSON = true
		case "-e", "--env":
			cfg.WithEnv = true
		case "-v", "--verbose":
			cfg.Verbose = true
		case "--raw":
			cfg.Raw = true
		case "--version":
			cfg.Mode = ModeVersion
			return cfg, nil
		case "-f", "--filter":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires an expression", args[i])
			}
			cfg.FilterExpr = args[i+1]
			i++ // skip the value
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) == 0 {
		return cfg, nil
	}

	switch positional[0] {
	case ModeList:
		if len(positional) > 1 {
			return nil, usageError(args[0])
		}
		cfg.Mode = ModeList
	case ModeArgs, ModeCheck:
		if len(positional) != 2 {
			return nil, fmt.Errorf("%s requires exactly one pid", positional[0])
		}
		pid, err := parsePid(positional[1])
		if err != nil {
			return nil, err
		}
		cfg.Mode = positional[0]
		cfg.PID = pid
	default:
		return nil, usageError(args[0])
	}

	if cfg.FilterExpr != "" && cfg.Mode != ModeList {
		return nil, fmt.Errorf("--filter only applies to list mode")
	}
	if cfg.Raw && cfg.Mode != ModeArgs {
		return nil, fmt.Errorf("--raw only applies to args mode")
	}

	return cfg, nil
}

// parsePid accepts any syntactically valid pid, including negative ones.
// Negative pids are deliberately let through so the liveness classifier can
// reject them itself; only non-numbers are errors here.
func parsePid(s string) (int32, error) {
	pid, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pid %q", s)
	}
	return int32(pid), nil
}

func usageError(programName string) error {
	return fmt.Errorf("Usage: %s [-j] [-e] [-v] [-f <expr>] [list]\n"+
		"       %s [--raw] args <pid>\n"+
		"       %s check <pid>",
		programName, programName, programName)
}
