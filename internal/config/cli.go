package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Zero values
// leave the file and environment settings alone.
type CLIOptions struct {
	PNGFile          string
	ExportCmd        string
	PlaceholderColor string
	LogLevel         string
	Port             uint
	ChartSize        int
	NoColor          bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			PNGFile:          ctx.String("png-file"),
			ExportCmd:        ctx.String("export-cmd"),
			PlaceholderColor: ctx.String("placeholder-color"),
			LogLevel:         ctx.String("log-level"),
			Port:             ctx.Uint("port"),
			ChartSize:        ctx.Int("size"),
			NoColor:          ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.PNGFile != "" {
		c.Export.PNGFile = opts.PNGFile
	}

	if opts.ExportCmd != "" {
		c.Export.Cmd = opts.ExportCmd
	}

	if opts.PlaceholderColor != "" {
		c.Display.PlaceholderColor = opts.PlaceholderColor
	}

	if opts.LogLevel != "" {
		c.Settings.LogLevel = opts.LogLevel
	}

	if opts.Port > 0 {
		c.Server.Port = opts.Port
	}

	if opts.ChartSize > 0 {
		applyChartSize(c, opts.ChartSize)
	}

	if opts.NoColor {
		c.Settings.NoColor = true
	}
}

// applyChartSize resizes the chart keeping the radii proportional.
func applyChartSize(c *Config, size int) {
	old := c.Display.ChartSize
	c.Display.ChartSize = size

	if old <= 0 {
		return
	}

	c.Display.InnerRadius = c.Display.InnerRadius * size / old
	c.Display.OuterRadius = c.Display.OuterRadius * size / old
}
