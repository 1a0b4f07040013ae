package driven

// ConfigStore provides read access to application configuration.
// Implementations handle the backing source (TOML file, process
// environment) and type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Load reads configuration from the backing source.
	Load() error

	// Path returns the backing source location.
	// Returns empty string for sources that aren't file-backed.
	Path() string
}
