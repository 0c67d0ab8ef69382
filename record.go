package writelog

import (
	"encoding/csv"
	"os"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// Record is one structured row of the persistent log, distinct from the
// transient console line. It is built immediately before the append and
// discarded afterwards.
type Record struct {
	Date         string // Full-precision timestamp
	User         string // domain\username style identity, may be ""
	Message      string // Event message, verbatim
	Tags         string // Serialized tag list ({A},{B})
	Severity     string // Severity enumeration name
	OutputStream string // Channel enumeration name
	Script       string // Originating file path, may be ""
	Line         string // Originating line number, may be ""
	Function     string // Rendered call chain
}

func recordHeader() []string {
	return []string{"Date", "User", "Message", "Tags", "Severity", "OutputStream", "Script", "Line", "Function"}
}

func (r Record) row() []string {
	return []string{r.Date, r.User, r.Message, r.Tags, r.Severity, r.OutputStream, r.Script, r.Line, r.Function}
}

// appendRecord appends rec as one CSV row to the file at path, writing
// the header first when the file is new or empty. The append is guarded
// by a non-blocking flock: a lock held by another writer is a failure,
// not a wait, so writers are never serialized here.
func appendRecord(path string, rec Record) error {
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return &PersistError{Op: "lock", Path: path, Err: err}
	}
	if !locked {
		return &PersistError{Op: "lock", Path: path, Err: errors.New("held by another writer")}
	}
	defer func() {
		_ = lock.Unlock() // Best effort
	}()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &PersistError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &PersistError{Op: "stat", Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(recordHeader()); err != nil {
			return &PersistError{Op: "write", Path: path, Err: errors.Wrap(err, "header row")}
		}
	}
	if err := w.Write(rec.row()); err != nil {
		return &PersistError{Op: "write", Path: path, Err: err}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return &PersistError{Op: "write", Path: path, Err: err}
	}
	return nil
}
