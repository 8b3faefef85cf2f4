package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/hourclock/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the hourclock app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "hourclock",
		Usage: `
		Hourclock plans a 60-minute broadcast clock from the command-line. Lay out
		the segments of a radio or TV hour, see the gaps, and export the result as
		a ring chart or a CSV rundown.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Print the clock with unscheduled time filled in",
				Flags:   []cli.Flag{jsonFlag},
				Action:  listAction,
			},
			{
				Name:      "add",
				Usage:     "Add a segment. The end may be earlier than the start to wrap past the hour",
				ArgsUsage: "<label> <start mm:ss> <end mm:ss> [color]",
				Action:    addAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit a segment by its row number in 'list' or its id",
				ArgsUsage: "<row|id>",
				Flags:     []cli.Flag{labelFlag, startFlag, endFlag, colorFlag},
				Action:    editAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete one or more segments by row number or id",
				ArgsUsage: "<row|id>...",
				Action:    deleteAction,
			},
			{
				Name:      "import",
				Usage:     "Replace the clock with the rows of a CSV file ('-' reads standard input)",
				ArgsUsage: "<file.csv>",
				Action:    importAction,
			},
			{
				Name:      "export-csv",
				Usage:     "Write the clock as CSV to a file or standard output",
				ArgsUsage: "[file.csv]",
				Action:    exportCSVAction,
			},
			{
				Name:   "export-png",
				Usage:  "Render the clock as a ring chart",
				Flags:  []cli.Flag{exportPNGFileFlag, exportPNGCmdFlag},
				Action: exportPNGAction,
			},
			{
				Name:      "save",
				Usage:     "Save a snapshot of the clock under a show name and episode number",
				ArgsUsage: "<show name> <episode>",
				Action:    saveAction,
			},
			{
				Name:   "clocks",
				Usage:  "List saved clocks",
				Flags:  []cli.Flag{sinceFlag, nameFlag, jsonFlag},
				Action: clocksAction,
			},
			{
				Name:      "load",
				Usage:     "Replace the clock with a saved snapshot",
				ArgsUsage: "<clock id>",
				Action:    loadAction,
			},
			{
				Name:      "delete-clock",
				Usage:     "Delete a saved snapshot",
				ArgsUsage: "<clock id>",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteClockAction,
			},
			{
				Name:   "reset",
				Usage:  "Restore the starter segments. Saved clocks are kept",
				Flags:  []cli.Flag{yesFlag},
				Action: resetAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve the clock over a local JSON API with a live PNG and metrics",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			dbFlag,
			logLevelFlag,
			sizeFlag,
			placeholderColorFlag,
			pngFileFlag,
			exportCmdFlag,
			csvFileFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}
}
