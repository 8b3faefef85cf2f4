package config

import (
	"slices"
	"strings"

	"github.com/ayoisaiah/hourclock/internal/segment"
)

var (
	minChartSize = 100
	maxChartSize = 4096

	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
// The placeholder color is normalised in place.
func (c *Config) Validate() error {
	if err := c.validateDisplay(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Export.PNGFile) == "" {
		return errEmptyPNGFile
	}

	if c.Server.Port == 0 || c.Server.Port > 65535 {
		return errInvalidPort.Fmt(c.Server.Port)
	}

	level := strings.ToLower(c.Settings.LogLevel)
	if !slices.Contains(logLevels, level) {
		return errInvalidLogLevel.Fmt(c.Settings.LogLevel)
	}

	c.Settings.LogLevel = level

	return nil
}

func (c *Config) validateDisplay() error {
	d := &c.Display

	if d.ChartSize < minChartSize || d.ChartSize > maxChartSize {
		return errInvalidChartSize.Fmt(minChartSize, maxChartSize, d.ChartSize)
	}

	if d.InnerRadius < 0 || d.InnerRadius >= d.OuterRadius ||
		d.OuterRadius > d.ChartSize/2 {
		return errInvalidRadius.Fmt(d.InnerRadius, d.OuterRadius, d.ChartSize/2)
	}

	color, err := segment.NormalizeColor(d.PlaceholderColor)
	if err != nil {
		return errInvalidColor.Fmt("display.placeholder_color", d.PlaceholderColor)
	}

	d.PlaceholderColor = color

	return nil
}
