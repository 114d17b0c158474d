package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2docx/internal/logger"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Flags are parsed again by runMain, which reports any error.
	verbose := false
	if flags, _, err := parseFlags(os.Args[1:]); err == nil {
		verbose = flags.common.verbose
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	flags, positional, err := parseFlags(args)
	if err != nil {
		printError(env.Stderr, err, "")
		fmt.Fprintln(env.Stderr, "Run 'md2docx --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "go-md2docx %s\n", Version)
		return ExitSuccess
	}

	log := logger.New(env.Stderr, logger.LevelFor(flags.common.quiet, flags.common.verbose))
	if !flags.common.quiet {
		warnUnknownEnvVars(env, env.Stderr)
	}

	if flags.host.checkApp {
		prefer := flags.host.name
		if prefer == "" {
			prefer = loadEnvConfig(env, log).Host
		}
		return runCheckCmd(flags, env, prefer)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := runConvert(ctx, positional, flags, env, log); err != nil {
		printError(env.Stderr, err, flags.common.config)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// printError writes err with its hint, if any.
func printError(w io.Writer, err error, configName string) {
	fmt.Fprintf(w, "md2docx: %v%s\n", err, hintFor(err, configName))
}
