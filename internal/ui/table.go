// Package ui holds the pterm helpers used for command-line output.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable prints data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
