package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Use this config file instead of the default location",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Use this database file instead of the default location",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log verbosity: debug, info, warn or error",
	}

	sizeFlag = &cli.IntFlag{
		Name:  "size",
		Usage: "Width and height of the exported chart in pixels (radii scale along)",
	}

	placeholderColorFlag = &cli.StringFlag{
		Name:  "placeholder-color",
		Usage: "Hex color used for unscheduled time",
	}

	pngFileFlag = &cli.StringFlag{
		Name:    "png-file",
		Aliases: []string{"o"},
		Usage:   "Where to write the exported chart (default: clock.png)",
	}

	exportCmdFlag = &cli.StringFlag{
		Name:    "export-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Run a command after exporting the chart. {file} is replaced with the image path",
	}

	// the export-png command takes its own copies so the flags can follow it
	exportPNGFileFlag = &cli.StringFlag{
		Name:    pngFileFlag.Name,
		Aliases: pngFileFlag.Aliases,
		Usage:   pngFileFlag.Usage,
	}

	exportPNGCmdFlag = &cli.StringFlag{
		Name:    exportCmdFlag.Name,
		Aliases: exportCmdFlag.Aliases,
		Usage:   exportCmdFlag.Usage,
	}

	csvFileFlag = &cli.StringFlag{
		Name:  "csv-file",
		Usage: "CSV file used by the import and export shortcuts in the editor",
		Value: "clock.csv",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only list clocks saved after this date (e.g. 'last week' or '2026-01-31')",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Only list clocks whose show name contains this text",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	portFlag = &cli.UintFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Usage:   "Port for the HTTP server (default: 1212)",
	}

	labelFlag = &cli.StringFlag{
		Name:    "label",
		Aliases: []string{"l"},
		Usage:   "New label",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "New start time (mm:ss)",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "New end time (mm:ss)",
	}

	colorFlag = &cli.StringFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "New hex color",
	}
)
