package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/s-stratton/simplyjobs/internal/core/config"
)

type Flags struct {
	LogLevel    string
	LogFile     string
	ConfigPath  string
	DataDir     string
	SessionFile string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "simplyjobs", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "simplyjobs")
}

// DefaultSessionFile returns the default session file path. The login
// flow writes it next to the config.
func DefaultSessionFile() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "session.json")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/simplyjobs/simplyjobs.log
// On Linux: $XDG_STATE_HOME/simplyjobs/simplyjobs.log (defaults to ~/.local/state/...)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "simplyjobs", "simplyjobs.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "simplyjobs", "simplyjobs.log")
	}

	return filepath.Join(home, ".local", "state", "simplyjobs", "simplyjobs.log")
}
