package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"selb/misc"
	"selb/render"
	"selb/state"
)

const buildHelp = `%s
RECIPE:
    path to YAML recipe describing selectors, combinations and rules, or path
    to zip bundle - every .yaml/.yml file in the bundle is processed

DESTINATION:
    directory to write stylesheet(s) to, file names come from recipe names or
    from output.file_name_template configuration value
    if absent - STDOUT
`

const dumpHelp = `%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces "active" configuration: embedded defaults with values from
configuration file applied. Use --default to see embedded defaults only.
`

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "builds CSS stylesheets from selector recipes",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          beforeCommand,
		After:           afterCommand,
		OnUsageError:    usageError,
		ExitErrHandler:  logExitError,
		CommandNotFound: unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and collect inputs, outputs and logs into report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "build",
				Usage:        "Renders stylesheet from recipe file or bundle",
				OnUsageError: usageError,
				Action:       render.Build,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "replace existing stylesheets in destination"},
				},
				ArgsUsage:          "RECIPE [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(buildHelp, cli.CommandHelpTemplate),
			},
			{
				Name:         "list",
				Usage:        "Lists selectors defined by recipe file or bundle",
				OnUsageError: usageError,
				Action:       render.List,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "tree", Usage: "show how every selector is composed"},
				},
				ArgsUsage: "RECIPE",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError:       usageError,
				Action:             dumpConfiguration,
				ArgsUsage:          "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(dumpHelp, cli.CommandHelpTemplate),
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	err := newApp().Run(ctx, os.Args)
	stop()

	if err != nil {
		// log may be gone already or never created
		if !errLogged {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
