package admin

import (
	"errors"
	"fmt"

	"northlinktelecom.com/cmd/server/slug"
)

// ErrSubmitInFlight is returned when a submit fires while the previous one
// has not finished
var ErrSubmitInFlight = errors.New("submit already in flight")

// SlugField couples a name/title input with its derived slug. While
// creating (no id yet) every name edit regenerates the slug; once the
// entity has an id, the name no longer drives the slug and it is edited
// independently.
type SlugField struct {
	ID   string
	Name string
	Slug string
}

// SetName updates the name, regenerating the slug while creating
func (f *SlugField) SetName(name string) {
	f.Name = name
	if f.ID == "" {
		f.Slug = slug.Make(name)
	}
}

// SetSlug sets the slug directly
func (f *SlugField) SetSlug(s string) {
	f.Slug = s
}

// StringList is the state of a repeatable text-row editor (job
// requirements and benefits, service details). A list always has at least
// one row; the remove control is disabled on the last one.
type StringList struct {
	rows []string
}

// NewStringList creates a list seeded with existing values, or a single
// empty row when there are none
func NewStringList(values ...string) *StringList {
	if len(values) == 0 {
		values = []string{""}
	}
	rows := make([]string, len(values))
	copy(rows, values)
	return &StringList{rows: rows}
}

// Rows returns the current rows
func (l *StringList) Rows() []string {
	return l.rows
}

// Set replaces the value of row i
func (l *StringList) Set(i int, value string) {
	if i >= 0 && i < len(l.rows) {
		l.rows[i] = value
	}
}

// Add appends an empty row
func (l *StringList) Add() {
	l.rows = append(l.rows, "")
}

// CanRemove reports whether the remove control is enabled
func (l *StringList) CanRemove() bool {
	return len(l.rows) > 1
}

// Remove deletes row i, preserving the relative order of the rest.
// Removing the last remaining row is refused.
func (l *StringList) Remove(i int) bool {
	if !l.CanRemove() || i < 0 || i >= len(l.rows) {
		return false
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	return true
}

// Validate rejects submission while any row is empty
func (l *StringList) Validate() error {
	for i, row := range l.rows {
		if row == "" {
			return fmt.Errorf("row %d is empty", i+1)
		}
	}
	return nil
}

// PendingFile is a file the user selected, held locally for preview until
// submission
type PendingFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileField defers a file upload until submit. Path holds the stored
// object path already on the entity (if any); a selected file replaces it
// only once Resolve uploads successfully.
type FileField struct {
	Path    string
	pending *PendingFile
}

// Select stages a file for upload at submission time
func (f *FileField) Select(name, contentType string, data []byte) {
	f.pending = &PendingFile{Name: name, ContentType: contentType, Data: data}
}

// Pending returns the staged file, or nil when none is selected
func (f *FileField) Pending() *PendingFile {
	return f.pending
}

// Resolve uploads the staged file through upload and merges the resulting
// path into the field, clearing the staged state. Without a staged file it
// returns the existing path unchanged.
func (f *FileField) Resolve(upload func(PendingFile) (string, error)) (string, error) {
	if f.pending == nil {
		return f.Path, nil
	}

	path, err := upload(*f.pending)
	if err != nil {
		return "", err
	}

	f.Path = path
	f.pending = nil
	return path, nil
}

// Form carries submit state shared by every resource form: the submitting
// flag that prevents double-firing, and the dismissable inline error
// banner. Draft contents live with the caller; they persist across failed
// submits and reset only on a successful create.
type Form struct {
	submitting bool
	errMsg     string
}

// Submitting reports whether a submit is in flight
func (f *Form) Submitting() bool {
	return f.submitting
}

// Error returns the current inline error message, empty when none
func (f *Form) Error() string {
	return f.errMsg
}

// DismissError clears the inline error banner
func (f *Form) DismissError() {
	f.errMsg = ""
}

// Submit runs fn under the submitting flag. A second submit while one is
// in flight returns ErrSubmitInFlight without running fn. A failed fn sets
// the inline error, a successful one clears it.
func (f *Form) Submit(fn func() error) error {
	if f.submitting {
		return ErrSubmitInFlight
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	if err := fn(); err != nil {
		f.errMsg = err.Error()
		return err
	}

	f.errMsg = ""
	return nil
}
