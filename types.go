package writelog

import (
	"strings"
	"time"
)

// Severity classifies a log event independently of the channel it is
// routed to.
type Severity int

const (
	// SeverityInformation is the default severity for routine events.
	SeverityInformation Severity = iota

	// SeverityMilestone marks notable progress points (build started,
	// deployment finished).
	SeverityMilestone

	// SeverityVerbose marks detailed diagnostic events.
	SeverityVerbose

	// SeverityWarning marks recoverable problems.
	SeverityWarning

	// SeverityCritical marks failures of an operation or component.
	SeverityCritical

	// SeverityDebug marks development diagnostics.
	SeverityDebug
)

var severityNames = []string{
	SeverityInformation: "Information",
	SeverityMilestone:   "Milestone",
	SeverityVerbose:     "Verbose",
	SeverityWarning:     "Warning",
	SeverityCritical:    "Critical",
	SeverityDebug:       "Debug",
}

// Valid reports whether s is a member of the severity enumeration.
func (s Severity) Valid() bool {
	return s >= SeverityInformation && s <= SeverityDebug
}

// String returns the enumeration name, or "Unknown" for out-of-range values.
func (s Severity) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return severityNames[s]
}

// ParseSeverity converts a severity name to its Severity value. Matching is
// case-insensitive. Unknown names produce a *ConfigError.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if strings.EqualFold(name, n) {
			return Severity(i), nil
		}
	}
	return 0, newConfigError("severity", name, "not a member of the severity enumeration")
}

// Channel names the destination a rendered line is dispatched to.
type Channel int

const (
	// ChannelInformation is the default channel, for informational lines.
	// Tags attach to this channel as native metadata.
	ChannelInformation Channel = iota

	// ChannelOutput is the plain success stream.
	ChannelOutput

	// ChannelVerbose is the trace stream, suppressed by default.
	ChannelVerbose

	// ChannelWarning is the warning stream.
	ChannelWarning

	// ChannelError is the non-fatal error stream. Emissions here never
	// raise or halt the caller.
	ChannelError

	// ChannelDebug is the debug stream, suppressed by default.
	ChannelDebug

	// ChannelHost is the interactive display; the only channel that
	// honors foreground and background colors.
	ChannelHost
)

var channelNames = []string{
	ChannelInformation: "Information",
	ChannelOutput:      "Output",
	ChannelVerbose:     "Verbose",
	ChannelWarning:     "Warning",
	ChannelError:       "Error",
	ChannelDebug:       "Debug",
	ChannelHost:        "Host",
}

// Valid reports whether c is a member of the channel enumeration.
func (c Channel) Valid() bool {
	return c >= ChannelInformation && c <= ChannelHost
}

// String returns the enumeration name, or "Unknown" for out-of-range values.
func (c Channel) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return channelNames[c]
}

// ParseChannel converts a channel name to its Channel value. Matching is
// case-insensitive. Unknown names produce a *ConfigError.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if strings.EqualFold(name, n) {
			return Channel(i), nil
		}
	}
	return 0, newConfigError("outputChannel", name, "not a member of the channel enumeration")
}

// DefaultTimeFormat is the console timestamp layout used when an Event
// does not set one.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// recordTimeFormat is the full-precision timestamp layout for persisted
// records, independent of the console format.
const recordTimeFormat = "2006-01-02 15:04:05.000000"

// Event is one logical log event. It is constructed per call and never
// stored; zero values select the documented defaults.
type Event struct {
	// Message is the log text. Empty is accepted and produces a
	// near-empty line.
	Message string

	// Tags is optional metadata attached natively to sinks that
	// support it (the information channel, header-capable sinks).
	Tags []string

	// Severity defaults to SeverityInformation.
	Severity Severity

	// Channel defaults to ChannelInformation.
	Channel Channel

	// Foreground and Background select display colors. Only the host
	// channel honors them; ColorUnset leaves the display default.
	Foreground Color
	Background Color

	// TimeFormat overrides DefaultTimeFormat for the console timestamp.
	TimeFormat string

	// PersistPath, when non-empty, appends a CSV record of this event
	// to the named file.
	PersistPath string
}

// validate rejects enum members outside their closed sets before any
// output occurs.
func (ev Event) validate() error {
	if !ev.Severity.Valid() {
		return newConfigError("severity", int(ev.Severity), "not a member of the severity enumeration")
	}
	if !ev.Channel.Valid() {
		return newConfigError("outputChannel", int(ev.Channel), "not a member of the channel enumeration")
	}
	if !ev.Foreground.Valid() {
		return newConfigError("foregroundColor", int(ev.Foreground), "not a member of the color palette")
	}
	if !ev.Background.Valid() {
		return newConfigError("backgroundColor", int(ev.Background), "not a member of the color palette")
	}
	return nil
}

// Clock supplies the wall-clock time for timestamps.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Identity supplies the current user identity recorded in persisted rows.
type Identity interface {
	// Current returns a domain\username style identity, or "" when the
	// process context cannot supply one.
	Current() string
}

// StackInspector supplies call-stack information at the point of logging.
type StackInspector interface {
	// CallChain returns the function names active above the emitter,
	// innermost caller first, with the emitter's own frames and
	// harness/top-level markers already stripped.
	CallChain() []string

	// Origin returns the file path and line of the emitter's immediate
	// caller. Both may be zero when the context cannot supply them;
	// absence is not an error.
	Origin() (file string, line int)
}
