package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	applog "weekgrid/internal/log"
	"weekgrid/internal/model"
)

// DefaultFileName is the name offered when saving a schedule.
const DefaultFileName = "schedule.json"

// ErrParse is returned when a load file is not well-formed JSON or its
// top-level shape is wrong.
var ErrParse = errors.New("schedule: malformed schedule file")

// document is the persisted form. Ids are runtime-only identity and
// deliberately absent (model.Event marks ID json:"-").
type document struct {
	Events *[]model.Event `json:"events"`
}

// Serialize renders the event set as the schedule file document.
func Serialize(events []model.Event) ([]byte, error) {
	evs := events
	if evs == nil {
		evs = []model.Event{}
	}
	doc := document{Events: &evs}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Deserialize parses a schedule file. Each record receives a freshly
// generated id; individual field values are trusted as-is, so a record
// with an out-of-range time simply never renders rather than failing
// the whole load.
func Deserialize(data []byte) ([]model.Event, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Events == nil {
		return nil, fmt.Errorf("%w: missing events array", ErrParse)
	}

	events := *doc.Events
	for i := range events {
		events[i].ID = newID()
	}
	return events, nil
}

// Files reads and writes schedule documents through an afero
// filesystem, memory-backed in tests.
type Files struct {
	fs afero.Fs
}

// NewFiles returns a Files service over the given filesystem.
func NewFiles(fs afero.Fs) *Files {
	return &Files{fs: fs}
}

// Load reads and parses the schedule file at path. A read or parse
// failure leaves the caller's store untouched; only a fully parsed
// event list is returned.
func (f *Files) Load(path string) ([]model.Event, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		applog.Error("schedule load failed", err, "path", path)
		return nil, err
	}
	events, err := Deserialize(data)
	if err != nil {
		applog.Error("schedule parse failed", err, "path", path)
		return nil, err
	}
	applog.Info("schedule loaded", "path", path, "event_count", len(events))
	return events, nil
}

// Save serializes events and writes them to path.
func (f *Files) Save(path string, events []model.Event) error {
	data, err := Serialize(events)
	if err != nil {
		return err
	}
	if err := f.WriteBytes(path, data); err != nil {
		return err
	}
	applog.Info("schedule saved", "path", path, "event_count", len(events))
	return nil
}

// WriteBytes writes data to path atomically via a temp file in the
// same directory.
func (f *Files) WriteBytes(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := afero.TempFile(f.fs, dir, ".schedule-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer f.fs.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return f.fs.Rename(tmpName, path)
}
