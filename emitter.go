package writelog

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// Emitter transforms one Event into a rendered line dispatched to the
// selected channel and, when a persist path is set, an appended row in
// the persistent log. Each call is stateless and self-contained.
type Emitter struct {
	sinks   map[Channel]Sink
	clock   Clock
	id      Identity
	stack   StackInspector
	onError func(error)
}

// Option is a functional option for configuring an Emitter.
type Option func(*Emitter) error

// New creates an Emitter with the default collaborators: system clock,
// process-environment identity, runtime stack inspector, and the default
// sink set (stdout/stderr streams, verbose and debug suppressed).
func New(opts ...Option) (*Emitter, error) {
	e := &Emitter{
		sinks: defaultSinks(),
		clock: systemClock{},
		id:    NewIdentity(),
		stack: NewStackInspector(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// WithSink routes channel ch to sink s.
func WithSink(ch Channel, s Sink) Option {
	return func(e *Emitter) error {
		if !ch.Valid() {
			return newConfigError("channel", int(ch), "not a member of the channel enumeration")
		}
		if s == nil {
			return newConfigError("sink", nil, "sink must not be nil")
		}
		e.sinks[ch] = s
		return nil
	}
}

// WithVerboseWriter routes the verbose channel to w instead of
// discarding it.
func WithVerboseWriter(w io.Writer) Option {
	return WithSink(ChannelVerbose, NewStreamSink(w))
}

// WithDebugWriter routes the debug channel to w instead of discarding it.
func WithDebugWriter(w io.Writer) Option {
	return WithSink(ChannelDebug, NewStreamSink(w))
}

// WithClock replaces the wall-clock source.
func WithClock(c Clock) Option {
	return func(e *Emitter) error {
		if c == nil {
			return newConfigError("clock", nil, "clock must not be nil")
		}
		e.clock = c
		return nil
	}
}

// WithIdentity replaces the user identity provider.
func WithIdentity(id Identity) Option {
	return func(e *Emitter) error {
		if id == nil {
			return newConfigError("identity", nil, "identity must not be nil")
		}
		e.id = id
		return nil
	}
}

// WithStackInspector replaces the call-stack inspector.
func WithStackInspector(si StackInspector) Option {
	return func(e *Emitter) error {
		if si == nil {
			return newConfigError("stackInspector", nil, "stack inspector must not be nil")
		}
		e.stack = si
		return nil
	}
}

// WithErrorHandler registers fn to observe swallowed sink and
// persistence errors. Emit never returns them.
func WithErrorHandler(fn func(error)) Option {
	return func(e *Emitter) error {
		e.onError = fn
		return nil
	}
}

// Emit validates ev, renders it, dispatches the line to the selected
// channel, and appends a record to ev.PersistPath when set.
//
// The only error Emit returns is a *ConfigError for an enum value
// outside its closed set, raised before any output occurs. Sink and
// persistence failures are non-fatal: persistence failures are reported
// through the warning channel, and both are passed to the error handler
// when one is registered.
func (e *Emitter) Emit(ev Event) error {
	if err := ev.validate(); err != nil {
		return err
	}

	format := ev.TimeFormat
	if format == "" {
		format = DefaultTimeFormat
	}
	now := e.clock.Now()
	chain := joinChain(e.stack.CallChain())
	line := renderLine(now.Format(format), ev.Severity, chain, ev.Message)

	if sink, ok := e.sinks[ev.Channel]; ok && sink != nil {
		var meta Meta
		switch ev.Channel {
		case ChannelInformation:
			meta.Tags = ev.Tags
		case ChannelHost:
			meta.Foreground = ev.Foreground
			meta.Background = ev.Background
		}
		if err := sink.Emit(line, meta); err != nil {
			e.report(&SinkError{Channel: ev.Channel, Err: err})
		}
	}

	if ev.PersistPath != "" {
		e.persist(now, ev, chain)
	}
	return nil
}

// persist builds the record for ev and appends it, routing any failure
// to the warning channel.
func (e *Emitter) persist(now time.Time, ev Event, chain string) {
	script, lineNo := e.stack.Origin()
	lineStr := ""
	if lineNo > 0 {
		lineStr = strconv.Itoa(lineNo)
	}
	rec := Record{
		Date:         now.Format(recordTimeFormat),
		User:         e.id.Current(),
		Message:      ev.Message,
		Tags:         serializeTags(ev.Tags),
		Severity:     ev.Severity.String(),
		OutputStream: ev.Channel.String(),
		Script:       script,
		Line:         lineStr,
		Function:     chain,
	}
	if err := appendRecord(ev.PersistPath, rec); err != nil {
		if warn, ok := e.sinks[ChannelWarning]; ok && warn != nil {
			if werr := warn.Emit(fmt.Sprintf("log persistence failed: %v", err), Meta{}); werr != nil {
				e.report(&SinkError{Channel: ChannelWarning, Err: werr})
			}
		}
		e.report(err)
	}
}

func (e *Emitter) report(err error) {
	if e.onError != nil && err != nil {
		e.onError(err)
	}
}

// Milestone emits msg at milestone severity on the output channel.
func (e *Emitter) Milestone(msg string) error {
	return e.Emit(Event{Message: msg, Severity: SeverityMilestone, Channel: ChannelOutput})
}

// Milestonef emits a formatted milestone message on the output channel.
func (e *Emitter) Milestonef(format string, args ...interface{}) error {
	return e.Milestone(fmt.Sprintf(format, args...))
}

// Info emits msg at the default severity on the information channel.
func (e *Emitter) Info(msg string) error {
	return e.Emit(Event{Message: msg})
}

// Infof emits a formatted informational message.
func (e *Emitter) Infof(format string, args ...interface{}) error {
	return e.Info(fmt.Sprintf(format, args...))
}

// Verbose emits msg at verbose severity on the verbose channel.
func (e *Emitter) Verbose(msg string) error {
	return e.Emit(Event{Message: msg, Severity: SeverityVerbose, Channel: ChannelVerbose})
}

// Verbosef emits a formatted verbose message.
func (e *Emitter) Verbosef(format string, args ...interface{}) error {
	return e.Verbose(fmt.Sprintf(format, args...))
}

// Warning emits msg at warning severity on the warning channel.
func (e *Emitter) Warning(msg string) error {
	return e.Emit(Event{Message: msg, Severity: SeverityWarning, Channel: ChannelWarning})
}

// Warningf emits a formatted warning message.
func (e *Emitter) Warningf(format string, args ...interface{}) error {
	return e.Warning(fmt.Sprintf(format, args...))
}

// Critical emits msg at critical severity on the error channel. The
// error channel is a reporting stream; emitting never halts the caller.
func (e *Emitter) Critical(msg string) error {
	return e.Emit(Event{Message: msg, Severity: SeverityCritical, Channel: ChannelError})
}

// Criticalf emits a formatted critical message on the error channel.
func (e *Emitter) Criticalf(format string, args ...interface{}) error {
	return e.Critical(fmt.Sprintf(format, args...))
}

// Debug emits msg at debug severity on the debug channel.
func (e *Emitter) Debug(msg string) error {
	return e.Emit(Event{Message: msg, Severity: SeverityDebug, Channel: ChannelDebug})
}

// Debugf emits a formatted debug message.
func (e *Emitter) Debugf(format string, args ...interface{}) error {
	return e.Debug(fmt.Sprintf(format, args...))
}
