package writelog

import "fmt"

// ConfigError reports a parameter whose value falls outside its closed
// enumeration. It is returned to the caller before any channel or file
// write occurs.
type ConfigError struct {
	Field string      // Parameter that failed validation
	Value interface{} // Offending value
	Err   error       // Underlying error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %s with value %v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field string, value interface{}, msg string) *ConfigError {
	return &ConfigError{Field: field, Value: value, Err: fmt.Errorf("%s", msg)}
}

// PersistError reports a failed append to the persistent log file. It is
// never returned from Emit; it is routed to the warning channel and, when
// set, the error handler.
type PersistError struct {
	Op   string // Operation that failed ("lock", "open", "write")
	Path string // Target file path
	Err  error  // Underlying error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %s error on %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// SinkError reports a failed channel emission. Sink failures are
// non-fatal; they are observable only through the error handler.
type SinkError struct {
	Channel Channel // Channel whose sink failed
	Err     error   // Underlying error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: emit failed: %v", e.Channel, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a configuration rejection.
func IsConfigError(err error) bool {
	_, ok := err.(*ConfigError)
	return ok
}
