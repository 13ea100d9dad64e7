package scheduling

import "errors"

// ConfigError is a fatal input problem detected before any allocation runs.
// It is the only error class that aborts a generation run; capacity
// shortfalls are reported through the metrics instead.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid schedule configuration: " + e.Reason
}

// IsConfigError reports whether err is (or wraps) a ConfigError
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
