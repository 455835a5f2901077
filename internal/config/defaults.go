package config

// DefaultLocalPath is the default local config file, relative to the
// project root.
const DefaultLocalPath = ".keel/hook.json"

// GetDefaults returns the default configuration values. The defaults
// yield the exact invocation "keel compile --changed --json".
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"keel_cmd":     "keel",
		"compile_args": []string{"compile", "--changed", "--json"},
	}
}
