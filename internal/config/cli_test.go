package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyCLIOptions(t *testing.T) {
	c := &Config{
		Display: DisplayConfig{ChartSize: 400, InnerRadius: 30, OuterRadius: 180},
		Export:  ExportConfig{PNGFile: "clock.png"},
		Server:  ServerConfig{Port: 1212},
	}

	applyCLIOptions(c, CLIOptions{
		PNGFile:   "out.png",
		Port:      4000,
		ChartSize: 800,
		NoColor:   true,
	})

	assert.Equal(t, "out.png", c.Export.PNGFile)
	assert.Equal(t, uint(4000), c.Server.Port)
	assert.Equal(t, 800, c.Display.ChartSize)
	assert.Equal(t, 60, c.Display.InnerRadius)
	assert.Equal(t, 360, c.Display.OuterRadius)
	assert.True(t, c.Settings.NoColor)
}

func TestApplyCLIOptionsEmpty(t *testing.T) {
	c := &Config{Export: ExportConfig{PNGFile: "clock.png", Cmd: "echo"}}

	applyCLIOptions(c, CLIOptions{})

	assert.Equal(t, "clock.png", c.Export.PNGFile)
	assert.Equal(t, "echo", c.Export.Cmd)
}
