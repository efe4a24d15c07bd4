package command

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/kestrel-labs/portmantout/internal/logger"
)

// LogLevelFlag and LogFormatFlag are shared across every subcommand, per the
// CLI surface contract.
var (
	LogLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "Set the log level (debug, info, warn, error)",
	}

	LogFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Value: "text",
		Usage: "Set the log output format (text, json)",
	}
)

// sharedFlags returns the common flags every subcommand accepts, to be
// concatenated with a command's own flags.
func sharedFlags() []cli.Flag {
	return []cli.Flag{LogLevelFlag, LogFormatFlag}
}

// buildLogger constructs a logger.Logger from the shared flags, failing with
// a usage ExitError on an unrecognised level or format.
func buildLogger(c *cli.Context) (logger.Logger, error) {
	level, err := logger.LevelFromString(c.String("log-level"))
	if err != nil {
		return nil, NewExitError(0, fmt.Errorf("--log-level: %w", err))
	}

	var printer logger.Printer
	switch c.String("log-format") {
	case "text":
		printer = &logger.TextPrinter{Writer: c.App.Writer}
	case "json":
		printer = &logger.JSONPrinter{Writer: c.App.Writer}
	default:
		return nil, NewExitError(0, fmt.Errorf("--log-format: unknown format %q, want text or json", c.String("log-format")))
	}

	l := logger.NewConsoleLogger(printer)
	l.SetLevel(level)
	return l, nil
}
