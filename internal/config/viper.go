package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/hourclock/internal/segment"
)

// EnvPrefix is prepended to environment overrides, e.g.
// HOURCLOCK_SERVER_PORT overrides server.port.
const EnvPrefix = "HOURCLOCK"

const (
	keyChartSize        = "display.chart_size"
	keyInnerRadius      = "display.inner_radius"
	keyOuterRadius      = "display.outer_radius"
	keyPlaceholderColor = "display.placeholder_color"
	keyDarkTheme        = "display.dark_theme"
	keyPNGFile          = "export.png_file"
	keyExportCmd        = "export.cmd"
	keyServerHost       = "server.host"
	keyServerPort       = "server.port"
	keyLogLevel         = "settings.log_level"
	keyNoColor          = "settings.no_color"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
// Environment variables prefixed with EnvPrefix take precedence over the
// file.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return errReadConfig.Wrap(err)
			}

			if err := v.WriteConfig(); err != nil {
				return errWriteConfig.Wrap(err)
			}
		}

		// bound after writing so overrides never end up in the file
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyChartSize, 400)
	v.SetDefault(keyInnerRadius, 30)
	v.SetDefault(keyOuterRadius, 180)
	v.SetDefault(keyPlaceholderColor, segment.DefaultPlaceholderColor)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyPNGFile, "clock.png")
	v.SetDefault(keyExportCmd, "")
	v.SetDefault(keyServerHost, "127.0.0.1")
	v.SetDefault(keyServerPort, 1212)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyNoColor, false)
}
