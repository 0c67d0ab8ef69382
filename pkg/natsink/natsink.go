// Package natsink provides a writelog Sink that publishes rendered log
// lines to a NATS subject. Tags travel as message headers, so the
// information channel's native-metadata rule survives the transport.
package natsink

import (
	"net/url"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/wayneeseguin/writelog"
)

// TagHeader is the message header carrying event tags, one value per tag.
const TagHeader = "Writelog-Tags"

// Sink publishes each rendered line to a fixed subject.
type Sink struct {
	conn    *nats.Conn
	subject string
	options []nats.Option
	servers string
}

var _ writelog.Sink = (*Sink)(nil)

// New creates a sink from a URI of the form
// nats://host:port/subject[?name=...] and connects to the server.
func New(uri string) (*Sink, error) {
	return NewWithOptions(uri, true)
}

// NewWithOptions creates a sink from uri, connecting only when connect
// is true. Deferring the connection keeps construction testable without
// a running server; call Connect before the first Emit.
func NewWithOptions(uri string, connect bool) (*Sink, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, "invalid NATS URI")
	}
	if parsed.Scheme != "nats" {
		return nil, errors.Errorf("invalid scheme: %s (expected 'nats')", parsed.Scheme)
	}
	subject := strings.TrimPrefix(parsed.Path, "/")
	if subject == "" {
		return nil, errors.New("missing subject in NATS URI")
	}

	s := &Sink{
		subject: subject,
		servers: parsed.Scheme + "://" + parsed.Host,
	}

	name := parsed.Query().Get("name")
	if name == "" {
		name = "writelog-nats-sink"
	}
	s.options = []nats.Option{nats.Name(name)}

	if connect {
		if err := s.Connect(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Connect establishes the server connection. It is a no-op when already
// connected.
func (s *Sink) Connect() error {
	if s.conn != nil {
		return nil
	}
	conn, err := nats.Connect(s.servers, s.options...)
	if err != nil {
		return errors.Wrap(err, "connect to NATS")
	}
	s.conn = conn
	return nil
}

// Subject returns the publish subject parsed from the URI.
func (s *Sink) Subject() string {
	return s.subject
}

// Emit publishes line to the subject. Tags from meta become TagHeader
// header values; colors have no representation on this transport and
// are ignored.
func (s *Sink) Emit(line string, meta writelog.Meta) error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	msg := nats.NewMsg(s.subject)
	msg.Data = []byte(line)
	for _, tag := range meta.Tags {
		msg.Header.Add(TagHeader, tag)
	}
	return s.conn.PublishMsg(msg)
}

// Close flushes and closes the connection.
func (s *Sink) Close() error {
	if s.conn == nil {
		return nil
	}
	if err := s.conn.Flush(); err != nil {
		s.conn.Close()
		return errors.Wrap(err, "flush NATS connection")
	}
	s.conn.Close()
	s.conn = nil
	return nil
}
