package app

import (
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/hourclock/internal/apperr"
)

// fileToken is replaced with the exported file path in export commands.
const fileToken = "{file}"

var errExportCmd = &apperr.Error{
	Message: "the export command %q failed",
}

// exportCmdArgs splits cmd into arguments and substitutes path for every
// {file} token. The path is appended when no token is present.
func exportCmdArgs(cmd, path string) ([]string, error) {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, nil
	}

	var substituted bool

	for i := range args {
		if strings.Contains(args[i], fileToken) {
			args[i] = strings.ReplaceAll(args[i], fileToken, path)
			substituted = true
		}
	}

	if !substituted {
		args = append(args, path)
	}

	return args, nil
}

// runExportCmd runs the configured post-export command, if any.
func runExportCmd(cmd, path string) error {
	if cmd == "" {
		return nil
	}

	args, err := exportCmdArgs(cmd, path)
	if err != nil {
		return errExportCmd.Fmt(cmd).Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	c := exec.Command(args[0], args[1:]...)

	if err := c.Run(); err != nil {
		return errExportCmd.Fmt(cmd).Wrap(err)
	}

	return nil
}
