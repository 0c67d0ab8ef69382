package writelog

import (
	"runtime"
	"strings"
)

// emitterPkgPrefix identifies this package's own frames in captured
// stacks. The trailing dot keeps subpackages and external test packages
// out of the match.
const emitterPkgPrefix = "github.com/wayneeseguin/writelog."

// maxStackDepth bounds how many frames a capture inspects.
const maxStackDepth = 32

// runtimeInspector is the default StackInspector, backed by
// runtime.Callers.
//
// Frame policy: the emitter's own frames, the runtime's scheduler frames
// and the test harness's runner frames are stripped; "main.main" and
// anonymous function literals count as top-level markers and are
// stripped as well. What remains is the chain of named callers,
// innermost first.
type runtimeInspector struct{}

// NewStackInspector returns the runtime-backed inspector.
func NewStackInspector() StackInspector {
	return runtimeInspector{}
}

func (runtimeInspector) CallChain() []string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var chain []string
	for {
		frame, more := frames.Next()
		if name, ok := callerName(frame.Function); ok {
			chain = append(chain, name)
		}
		if !more {
			break
		}
	}
	return chain
}

func (runtimeInspector) Origin() (string, int) {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return "", 0
	}
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fn := frame.Function
		if !strings.HasPrefix(fn, emitterPkgPrefix) &&
			!strings.HasPrefix(fn, "runtime.") {
			return frame.File, frame.Line
		}
		if !more {
			break
		}
	}
	return "", 0
}

// callerName reduces a fully qualified frame name to the bare function
// name, reporting false for frames the chain excludes.
func callerName(fn string) (string, bool) {
	if fn == "" || strings.HasPrefix(fn, emitterPkgPrefix) ||
		strings.HasPrefix(fn, "runtime.") ||
		strings.HasPrefix(fn, "testing.") {
		return "", false
	}
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	i := strings.IndexByte(fn, '.')
	if i < 0 {
		return fn, true
	}
	pkg, name := fn[:i], fn[i+1:]

	// Trim anonymous literal suffixes: "handler.func1.2" -> "handler".
	for {
		j := strings.LastIndexByte(name, '.')
		if j < 0 {
			break
		}
		if !isAnonSegment(name[j+1:]) {
			break
		}
		name = name[:j]
	}

	// Top-level markers render as nothing at all.
	if name == "" || isAnonSegment(name) || (pkg == "main" && name == "main") {
		return "", false
	}
	return name, true
}

// isAnonSegment reports whether a name segment is a compiler-generated
// function literal marker (func1, func2, ...) or a bare ordinal.
func isAnonSegment(s string) bool {
	if strings.HasPrefix(s, "func") {
		s = s[len("func"):]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
