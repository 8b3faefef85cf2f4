package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	keys := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("EDITOR KEYS"),
		"Press ? inside the editor to list every key binding.",
	)

	return description + usage + version + commands + options + env + keys
}

func envHelp() string {
	return `
HOURCLOCK_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

HOURCLOCK_ENV: suffix for the config, database and log file names (e.g. "dev" uses config_dev.yml).

HOURCLOCK_<SECTION>_<KEY>: override a config file setting for one run, e.g. HOURCLOCK_SERVER_PORT=8080 or HOURCLOCK_EXPORT_PNG_FILE=show.png.

A .env file in the working directory is read before the environment.`
}
