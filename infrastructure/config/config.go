package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btcsuite/btcutil"
	"github.com/kaspanet/txvalidator/infrastructure/logger"
	"github.com/pkg/errors"
)

const (
	defaultDataDirname    = "data"
	defaultLogDirname     = "logs"
	defaultLogFilename    = "txvalidator.log"
	defaultErrLogFilename = "txvalidator_err.log"
	defaultDebugLevel     = "info"
	showSubsystemsKeyword = "show"
	dataDirPermissions    = 0700
)

var (
	// DefaultAppDir is the default home directory for txvalidator.
	DefaultAppDir = btcutil.AppDataDir("txvalidator", false)
)

// Flags holds the settings shared by every txvalidator command
type Flags struct {
	AppDir     string `long:"appdir" short:"b" description:"Directory to store data"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	NoLogFiles bool   `long:"nologfiles" description:"Disable logging to files. Warnings and above are still written to stderr"`
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// DataDir is derived from AppDir by ResolveFlags
	DataDir string `no-flag:"true"`
}

// ResolveFlags fills in defaults, creates the data directory, starts the
// logger and applies the requested debug levels. It must be called once,
// after the command line was parsed.
func (flags *Flags) ResolveFlags() error {
	if flags.DebugLevel == showSubsystemsKeyword {
		fmt.Println("Supported subsystems", logger.SupportedSubsystems())
		os.Exit(0)
	}

	if flags.AppDir == "" {
		flags.AppDir = DefaultAppDir
	}
	flags.AppDir = cleanAndExpandPath(flags.AppDir)
	flags.DataDir = filepath.Join(flags.AppDir, defaultDataDirname)

	if flags.LogDir == "" {
		flags.LogDir = filepath.Join(flags.AppDir, defaultLogDirname)
	}
	flags.LogDir = cleanAndExpandPath(flags.LogDir)

	if flags.DebugLevel == "" {
		flags.DebugLevel = defaultDebugLevel
	}

	err := os.MkdirAll(flags.DataDir, dataDirPermissions)
	if err != nil {
		return errors.Wrapf(err, "could not create the data directory %s", flags.DataDir)
	}

	// Parse the levels before starting the logger so that an invalid debug
	// level is reported without side effects.
	err = logger.ParseAndSetLogLevels(flags.DebugLevel)
	if err != nil {
		return err
	}

	if logger.BackendLog.IsRunning() {
		return nil
	}
	if flags.NoLogFiles {
		logger.InitLogStdErr(logger.LevelWarn)
		return nil
	}
	logger.InitLog(filepath.Join(flags.LogDir, defaultLogFilename),
		filepath.Join(flags.LogDir, defaultErrLogFilename))
	return nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(DefaultAppDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
