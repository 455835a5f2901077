// Package codex manages the Codex CLI configuration file for keelhook.
// It handles loading, inspecting, and modifying .codex/config.toml to
// register (and deregister) the notify hook while preserving every other
// setting in the file.
//
// The package supports:
//   - Loading and parsing the Codex config file
//   - Checking whether the notify setting points at keelhook
//   - Setting and removing the notify command
//   - Atomic file writes to prevent corruption
package codex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ConfigDir is the directory containing Codex configuration.
const ConfigDir = ".codex"

// ConfigFileName is the name of the Codex config file.
const ConfigFileName = "config.toml"

// NotifyKey is the Codex setting that names the notification command.
const NotifyKey = "notify"

// hookMarker identifies a notify command installed by keelhook.
const hookMarker = "keelhook"

// Config represents a Codex config file with flexible TOML structure.
// Uses map[string]interface{} to preserve unknown settings during modification.
type Config struct {
	data     map[string]interface{}
	filePath string
}

// Load reads and parses the Codex config from the project directory.
// Returns a Config instance even if the file doesn't exist (with empty data).
// Returns an error only for actual failures like permission errors or malformed TOML.
func Load(projectDir string) (*Config, error) {
	c := &Config{
		data:     make(map[string]interface{}),
		filePath: filepath.Join(projectDir, ConfigDir, ConfigFileName),
	}

	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading codex config %s: %w", c.filePath, err)
	}

	if len(data) == 0 {
		return c, nil
	}

	if err := toml.Unmarshal(data, &c.data); err != nil {
		return nil, fmt.Errorf("parsing codex config %s: %w", c.filePath, err)
	}

	return c, nil
}

// FilePath returns the path to the config file.
func (c *Config) FilePath() string {
	return c.filePath
}

// Exists returns true if the config file exists on disk.
func (c *Config) Exists() bool {
	_, err := os.Stat(c.filePath)
	return err == nil
}

// Notify returns the configured notify command and whether it is set
// to a string value.
func (c *Config) Notify() (string, bool) {
	v, ok := c.data[NotifyKey]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// HookRegistered returns true if the notify setting points at a keelhook
// invocation.
func (c *Config) HookRegistered() bool {
	command, ok := c.Notify()
	return ok && strings.Contains(command, hookMarker)
}

// SetNotify sets the notify command, replacing any previous value.
func (c *Config) SetNotify(command string) {
	c.data[NotifyKey] = command
}

// RemoveNotify clears the notify setting when it was installed by
// keelhook. Returns true if the setting was removed; a foreign notify
// command is left untouched.
func (c *Config) RemoveNotify() bool {
	if !c.HookRegistered() {
		return false
	}
	delete(c.data, NotifyKey)
	return true
}

// Save writes the config back to disk atomically, creating the .codex
// directory when needed. The write goes to a temp file in the same
// directory followed by a rename so a crash never leaves a half-written
// config behind.
func (c *Config) Save() error {
	dir := filepath.Dir(c.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := toml.Marshal(c.data)
	if err != nil {
		return fmt.Errorf("encoding codex config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ConfigFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing codex config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.filePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing codex config: %w", err)
	}

	return nil
}
