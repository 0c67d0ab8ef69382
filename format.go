package writelog

import "strings"

// chainSeparator joins call-chain segments, outermost caller first.
const chainSeparator = ">"

// joinChain renders a captured call chain as a single string. The
// inspector reports names innermost first; the rendered form reads
// outermost-to-innermost, so the order is reversed before joining.
func joinChain(chain []string) string {
	if len(chain) == 0 {
		return ""
	}
	var b strings.Builder
	for i := len(chain) - 1; i >= 0; i-- {
		b.WriteString(chain[i])
		if i > 0 {
			b.WriteString(chainSeparator)
		}
	}
	return b.String()
}

// renderLine builds the one-line console form of an event:
// [timestamp][Severity][callChain] message. The call-chain segment is
// omitted when no caller frames remain above the emitter.
func renderLine(timestamp string, severity Severity, chain, message string) string {
	var b strings.Builder
	b.Grow(len(timestamp) + len(chain) + len(message) + 24)
	b.WriteByte('[')
	b.WriteString(timestamp)
	b.WriteString("][")
	b.WriteString(severity.String())
	b.WriteByte(']')
	if chain != "" {
		b.WriteByte('[')
		b.WriteString(chain)
		b.WriteByte(']')
	}
	b.WriteByte(' ')
	b.WriteString(message)
	return b.String()
}

// serializeTags renders tags for persistence: each tag wrapped in braces
// and joined with commas ({A},{B}); an empty list renders as "".
func serializeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	var b strings.Builder
	for i, tag := range tags {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		b.WriteString(tag)
		b.WriteByte('}')
	}
	return b.String()
}
