package writelog

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Meta carries channel-native metadata alongside a rendered line. Sinks
// use whichever fields their medium supports and ignore the rest.
type Meta struct {
	// Tags is populated for the information channel only.
	Tags []string

	// Foreground and Background are populated for the host channel
	// only. ColorUnset means "leave the display default".
	Foreground Color
	Background Color
}

// Sink receives rendered lines for one output channel. Implementations
// must be safe to call from the emitting goroutine; delivery and
// buffering semantics are the sink's own concern.
type Sink interface {
	Emit(line string, meta Meta) error
}

// StreamSink writes each rendered line to an io.Writer followed by a
// newline. Plain byte streams have no native metadata, so Meta is
// ignored.
type StreamSink struct {
	w io.Writer
}

// NewStreamSink returns a sink over w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Emit(line string, _ Meta) error {
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// HostSink writes to an interactive display, honoring palette colors.
// Whichever of the two colors is set is applied; both when both are set;
// the display defaults when neither is.
type HostSink struct {
	w io.Writer
}

// NewHostSink returns a display sink over w.
func NewHostSink(w io.Writer) *HostSink {
	return &HostSink{w: w}
}

func (s *HostSink) Emit(line string, meta Meta) error {
	attrs := make([]color.Attribute, 0, 2)
	if a, ok := meta.Foreground.foreground(); ok {
		attrs = append(attrs, a)
	}
	if a, ok := meta.Background.background(); ok {
		attrs = append(attrs, a)
	}
	if len(attrs) == 0 {
		_, err := fmt.Fprintln(s.w, line)
		return err
	}
	c := color.New(attrs...)
	// The caller asked for these colors explicitly; apply them even
	// when the writer is not a terminal.
	c.EnableColor()
	_, err := c.Fprintln(s.w, line)
	return err
}

// defaultSinks mirrors the host environment's default verbosity policy:
// verbose and debug lines are suppressed until a writer is configured
// for them.
func defaultSinks() map[Channel]Sink {
	return map[Channel]Sink{
		ChannelOutput:      NewStreamSink(os.Stdout),
		ChannelInformation: NewStreamSink(os.Stdout),
		ChannelVerbose:     NewStreamSink(io.Discard),
		ChannelWarning:     NewStreamSink(os.Stderr),
		ChannelError:       NewStreamSink(os.Stderr),
		ChannelDebug:       NewStreamSink(io.Discard),
		ChannelHost:        NewHostSink(os.Stdout),
	}
}
