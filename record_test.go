package writelog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gofrs/flock"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open persisted log: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read persisted log: %v", err)
	}
	return rows
}

func TestPersistWritesHeaderOnceAndAppendsInOrder(t *testing.T) {
	stack := fakeStack{chain: []string{"deploy", "main"}, file: "/src/deploy.go", line: 42}
	e, _ := newTestEmitter(t, stack)
	path := filepath.Join(t.TempDir(), "events.csv")

	first := Event{Message: "first", Tags: []string{"A", "B"}, Severity: SeverityMilestone, Channel: ChannelOutput, PersistPath: path}
	second := Event{Message: "second", PersistPath: path}
	if err := e.Emit(first); err != nil {
		t.Fatalf("Emit(first) unexpected error: %v", err)
	}
	if err := e.Emit(second); err != nil {
		t.Fatalf("Emit(second) unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("persisted rows = %d, want header + 2 records", len(rows))
	}

	wantHeader := []string{"Date", "User", "Message", "Tags", "Severity", "OutputStream", "Script", "Line", "Function"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v, want %v", rows[0], wantHeader)
	}

	wantFirst := []string{
		"2024-03-15 10:30:00.123456",
		`ACME\builder`,
		"first",
		"{A},{B}",
		"Milestone",
		"Output",
		"/src/deploy.go",
		"42",
		"main>deploy",
	}
	if !reflect.DeepEqual(rows[1], wantFirst) {
		t.Errorf("first record = %v, want %v", rows[1], wantFirst)
	}

	if rows[2][2] != "second" {
		t.Errorf("second record message = %q, want %q", rows[2][2], "second")
	}
	if rows[2][3] != "" {
		t.Errorf("second record tags = %q, want empty", rows[2][3])
	}
	if rows[2][4] != "Information" || rows[2][5] != "Information" {
		t.Errorf("second record defaults = %q/%q, want Information/Information", rows[2][4], rows[2][5])
	}
}

func TestPersistQuotesDelimitedText(t *testing.T) {
	e, _ := newTestEmitter(t, fakeStack{})
	path := filepath.Join(t.TempDir(), "events.csv")

	msg := `contains, commas and "quotes"`
	if err := e.Emit(Event{Message: msg, PersistPath: path}); err != nil {
		t.Fatalf("Emit() unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 2 {
		t.Fatalf("persisted rows = %d, want 2", len(rows))
	}
	if rows[1][2] != msg {
		t.Errorf("message round-trip = %q, want %q", rows[1][2], msg)
	}
}

func TestPersistEmptyOriginIsAccepted(t *testing.T) {
	// An interactive context cannot supply a script path or line;
	// absence is metadata, not an error.
	e, _ := newTestEmitter(t, fakeStack{})
	path := filepath.Join(t.TempDir(), "events.csv")

	if err := e.Emit(Event{Message: "no origin", PersistPath: path}); err != nil {
		t.Fatalf("Emit() unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if rows[1][6] != "" || rows[1][7] != "" {
		t.Errorf("origin fields = %q/%q, want empty", rows[1][6], rows[1][7])
	}
}

func TestPersistAppendsToExistingFileWithoutRewritingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")

	rec := Record{Date: "d1", Message: "one", Severity: "Information", OutputStream: "Output"}
	if err := appendRecord(path, rec); err != nil {
		t.Fatalf("appendRecord() unexpected error: %v", err)
	}
	rec.Date = "d2"
	rec.Message = "two"
	if err := appendRecord(path, rec); err != nil {
		t.Fatalf("appendRecord() unexpected error: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	headerCount := 0
	for _, row := range rows {
		if row[0] == "Date" {
			headerCount++
		}
	}
	if headerCount != 1 {
		t.Errorf("header rows = %d, want exactly 1", headerCount)
	}
}

func TestAppendRecordLockConflict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")

	held := flock.New(path)
	locked, err := held.TryLock()
	if err != nil {
		t.Fatalf("acquire competing lock: %v", err)
	}
	if !locked {
		t.Fatal("competing lock not acquired")
	}
	defer held.Unlock()

	err = appendRecord(path, Record{Message: "blocked"})
	if err == nil {
		t.Fatal("appendRecord() expected lock conflict error, got nil")
	}
	perr, ok := err.(*PersistError)
	if !ok {
		t.Fatalf("appendRecord() error = %T, want *PersistError", err)
	}
	if perr.Op != "lock" {
		t.Errorf("PersistError.Op = %q, want %q", perr.Op, "lock")
	}
}

func TestAppendRecordUnwritableTarget(t *testing.T) {
	// The path is a directory, so the append cannot open it.
	err := appendRecord(t.TempDir(), Record{Message: "x"})
	if err == nil {
		t.Fatal("appendRecord() expected error for directory target, got nil")
	}
	if _, ok := err.(*PersistError); !ok {
		t.Fatalf("appendRecord() error = %T, want *PersistError", err)
	}
}
