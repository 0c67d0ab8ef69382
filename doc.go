// Package writelog is a structured logging helper: it accepts a message
// plus metadata (tags, severity, destination channel, display colors,
// timestamp format) and emits a formatted line to a selectable output
// channel, optionally also appending a structured record to a persistent
// CSV log file.
//
// Key Features:
//
//   - Seven output channels (output, information, verbose, warning,
//     error, debug, host display) backed by pluggable sinks
//   - Six severity labels, independent of channel routing
//   - Call-chain capture showing which functions logged the event
//   - Optional CSV persistence with header management and standard
//     delimited-text quoting
//   - 16-color host display palette (foreground and background)
//   - Closed enumerations validated at the boundary with typed errors
//   - Injectable clock, identity, and stack-inspection collaborators
//     for deterministic tests
//
// Basic Usage:
//
//	writelog.Info("Application started")
//	writelog.Warning("Cache miss rate high")
//
//	err := writelog.Emit(writelog.Event{
//		Message:  "Build started",
//		Severity: writelog.SeverityMilestone,
//		Channel:  writelog.ChannelOutput,
//	})
//
// Persistence:
//
//	writelog.Emit(writelog.Event{
//		Message:     "Deployment finished",
//		Tags:        []string{"deploy", "prod"},
//		PersistPath: "/var/log/app/events.csv",
//	})
//
// Each persisted event is one CSV row with columns Date, User, Message,
// Tags, Severity, OutputStream, Script, Line, Function. The header row
// is written when the file is created and never rewritten. A failed
// append never reaches the caller: it is reported through the warning
// channel and the call completes normally.
//
// Host Display Colors:
//
//	writelog.Emit(writelog.Event{
//		Message:    "All checks passed",
//		Channel:    writelog.ChannelHost,
//		Foreground: writelog.ColorGreen,
//		Background: writelog.ColorBlack,
//	})
//
// Custom Sinks and Collaborators:
//
//	e, err := writelog.New(
//		writelog.WithSink(writelog.ChannelError, writelog.NewStreamSink(errWriter)),
//		writelog.WithVerboseWriter(os.Stderr),
//		writelog.WithClock(fixedClock),
//		writelog.WithErrorHandler(func(err error) {
//			metrics.CountLogFailure(err)
//		}),
//	)
//
// Error Handling:
//
// An enum value outside its closed set (severity, channel, color) is
// rejected with a *ConfigError before any output occurs. Sink and
// persistence failures are non-fatal by design; register an error
// handler to observe them.
//
// Concurrency:
//
// Emit is synchronous and runs to completion on the calling goroutine.
// The emitter holds no cross-call state, so independent call sites may
// emit concurrently; appends to a shared persist path are guarded by a
// non-blocking file lock and a conflict surfaces as a warning, not a
// wait.
package writelog
