package driven

// ConfigStore provides access to the CLI's own configuration: where the
// records database lives, logging and household reporting thresholds.
// Keys use dot notation, e.g. "storage.data_dir".
type ConfigStore interface {
	// Get retrieves a raw value and whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" when the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 when the key is missing or not numeric.
	GetInt(key string) int

	// GetBool returns false when the key is missing or not a boolean.
	GetBool(key string) bool

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Save persists the current configuration.
	Save() error

	// Load re-reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
