package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaths(t *testing.T) {
	p := newPaths("")
	assert.Equal(t, "config.yml", p.configFileName)
	assert.Equal(t, "hourclock.db", p.dbFileName)

	p = newPaths(" dev ")
	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "hourclock_dev.db", p.dbFileName)
	assert.Equal(t, "hourclock_dev.log", p.logFileName)
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, "clock", StripExtension("clock.png"))
	assert.Equal(t, "clock.png", WithExtension("clock", ".png"))
	assert.Equal(t, "clock.PNG", WithExtension("clock.PNG", ".png"))
	assert.Equal(t, "episode.csv", WithExtension("episode.csv", ".csv"))
}
