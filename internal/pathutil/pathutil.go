// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvVar suffixes every file name so separate environments (e.g. "dev")
// don't share a config file or database.
const EnvVar = "HOURCLOCK_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv(EnvVar))
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func newPaths(env string) *Paths {
	p := &Paths{
		appDir:         "hourclock",
		configFileName: "config.yml",
		dbFileName:     "hourclock.db",
		logFileName:    "hourclock.log",
	}

	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("hourclock_%s.db", env)
		p.logFileName = fmt.Sprintf("hourclock_%s.log", env)
	}

	return p
}

func Dir() string {
	return Must().appDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(filepath.Join(p.appDir, p.configFileName))
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.appDir)
	if err != nil {
		return err
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}

// WithExtension returns fileName with ext appended unless it already ends
// with it (case-insensitively).
func WithExtension(fileName, ext string) string {
	if strings.EqualFold(filepath.Ext(fileName), ext) {
		return fileName
	}

	return fileName + ext
}
