package writelog_test

import (
	"strings"
	"testing"

	"github.com/wayneeseguin/writelog"
)

type bufferSink struct {
	lines []string
}

func (b *bufferSink) Emit(line string, _ writelog.Meta) error {
	b.lines = append(b.lines, line)
	return nil
}

func emitThroughHelper(e *writelog.Emitter) error {
	return e.Emit(writelog.Event{Message: "ping", Channel: writelog.ChannelOutput})
}

func TestRuntimeCallChainCapture(t *testing.T) {
	sink := &bufferSink{}
	e, err := writelog.New(writelog.WithSink(writelog.ChannelOutput, sink))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	if err := emitThroughHelper(e); err != nil {
		t.Fatalf("Emit() unexpected error: %v", err)
	}
	if len(sink.lines) != 1 {
		t.Fatalf("output lines = %d, want 1", len(sink.lines))
	}

	// The chain reads outermost caller first; the emitter's own frames
	// and the test runner's frames never appear.
	line := sink.lines[0]
	if !strings.Contains(line, "[TestRuntimeCallChainCapture>emitThroughHelper]") {
		t.Errorf("line %q missing call-chain segment [TestRuntimeCallChainCapture>emitThroughHelper]", line)
	}
	if strings.Contains(line, "tRunner") || strings.Contains(line, "goexit") {
		t.Errorf("line %q contains harness frames", line)
	}
}

func TestRuntimeOriginCapture(t *testing.T) {
	file, line := writelog.NewStackInspector().Origin()
	if !strings.HasSuffix(file, "callchain_integration_test.go") {
		t.Errorf("origin file = %q, want this test file", file)
	}
	if line <= 0 {
		t.Errorf("origin line = %d, want > 0", line)
	}
}
