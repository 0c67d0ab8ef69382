package writelog

// Default is a package-level Emitter built from the default
// collaborators. The package-level functions below mirror the Emitter
// methods on it.
var Default = mustNew()

func mustNew() *Emitter {
	e, err := New()
	if err != nil {
		panic("writelog: " + err.Error())
	}
	return e
}

// Emit dispatches ev through the Default emitter.
func Emit(ev Event) error { return Default.Emit(ev) }

// Milestone emits msg through the Default emitter at milestone severity.
func Milestone(msg string) error { return Default.Milestone(msg) }

// Milestonef emits a formatted milestone message through the Default emitter.
func Milestonef(format string, args ...interface{}) error {
	return Default.Milestonef(format, args...)
}

// Info emits msg through the Default emitter on the information channel.
func Info(msg string) error { return Default.Info(msg) }

// Infof emits a formatted informational message through the Default emitter.
func Infof(format string, args ...interface{}) error {
	return Default.Infof(format, args...)
}

// Verbose emits msg through the Default emitter on the verbose channel.
func Verbose(msg string) error { return Default.Verbose(msg) }

// Verbosef emits a formatted verbose message through the Default emitter.
func Verbosef(format string, args ...interface{}) error {
	return Default.Verbosef(format, args...)
}

// Warning emits msg through the Default emitter on the warning channel.
func Warning(msg string) error { return Default.Warning(msg) }

// Warningf emits a formatted warning message through the Default emitter.
func Warningf(format string, args ...interface{}) error {
	return Default.Warningf(format, args...)
}

// Critical emits msg through the Default emitter on the error channel.
func Critical(msg string) error { return Default.Critical(msg) }

// Criticalf emits a formatted critical message through the Default emitter.
func Criticalf(format string, args ...interface{}) error {
	return Default.Criticalf(format, args...)
}

// Debug emits msg through the Default emitter on the debug channel.
func Debug(msg string) error { return Default.Debug(msg) }

// Debugf emits a formatted debug message through the Default emitter.
func Debugf(format string, args ...interface{}) error {
	return Default.Debugf(format, args...)
}
