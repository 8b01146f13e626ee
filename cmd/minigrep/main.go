package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/logging"
)

const programName = "minigrep"

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	terminated := -1
	kingpinApp := kingpin.New(programName, "Print the lines of a file that contain a query string")
	kingpinApp.UsageWriter(stderr)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Terminate(func(code int) {
		if terminated < 0 {
			terminated = code
		}
	})

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	ignoreCase := kingpinApp.Flag("ignore-case", "Match regardless of case (same as setting CASE_INSENSITIVE)").Short('i').Bool()
	colorMode := kingpinApp.Flag("color", "Highlight matches: auto, always or never").Enum("auto", "always", "never")
	logLevel := kingpinApp.Flag("log-level", "Diagnostic log level written to stderr").String()
	kingpinApp.Arg("args", "<query> <filename>: text to search for, then the file to search (use -- before a query starting with -)").Strings()
	kingpinApp.Interspersed(false)

	flagArgs, positional := splitArgs(args)
	if _, err := kingpinApp.Parse(flagArgs); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitUsage
	}
	if terminated >= 0 {
		return terminated
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *ignoreCase {
		overrides.IgnoreCase = ignoreCase
	}

	if *colorMode != "" {
		overrides.Color = colorMode
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Resolve(positional, overrides)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		if errors.Is(err, config.ErrMissingArgument) {
			fmt.Fprintf(stderr, "usage: %s <query> <filename>\n", programName)
		}
		return exitUsage
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: failed to initialize logger: %v\n", programName, err)
		return exitUsage
	}
	defer func() {
		_ = logger.Sync()
	}()

	app := application.New(cfg, logger, application.WithStdout(stdout))
	if err := app.Run(); err != nil {
		logger.Debug("run failed", zap.Error(err))
		fmt.Fprintf(stderr, "%s: %v\n", programName, err)
		return exitIO
	}

	return exitOK
}

// valueFlags take their value from the following token unless given as --flag=value.
var valueFlags = map[string]bool{
	"--config":    true,
	"--color":     true,
	"--log-level": true,
}

var boolFlags = map[string]bool{
	"-i":            true,
	"--ignore-case": true,
	"--help":        true,
}

// splitArgs hands kingpin only the leading tokens that name a registered flag.
// Everything from the first other token on is positional, so queries and
// filenames starting with "-" are taken as-is. A leading "--" ends the flags.
func splitArgs(args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return args[:i], args[i+1:]
		}

		name, _, hasValue := strings.Cut(arg, "=")
		switch {
		case boolFlags[arg]:
		case valueFlags[name] && hasValue:
		case valueFlags[arg]:
			if i+1 < len(args) {
				i++
			}
		default:
			return args[:i], args[i:]
		}
	}
	return args, nil
}
