package admin

import "context"

// Mode is a manager's current view
type Mode int

const (
	ModeListing Mode = iota
	ModeAdding
	ModeEditing
)

// API is the server contract a manager mutates through. Satisfied by
// small adapters over Client, one per resource.
type API[T any] interface {
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id string, draft T) (T, error)
	Delete(ctx context.Context, id string) error
}

// Manager owns one resource's in-memory list and view mode. The list is
// local to one console session; it is patched only after the server
// confirms a mutation, so a failed submit leaves it untouched and there is
// nothing to roll back.
type Manager[T any] struct {
	items   []T
	mode    Mode
	editing T

	api     API[T]
	idOf    func(T) string
	confirm func(T) bool
}

// NewManager creates a manager seeded with server-fetched initial data.
// idOf extracts a row's id for replace-by-id and remove.
func NewManager[T any](api API[T], idOf func(T) string, initial []T) *Manager[T] {
	items := make([]T, len(initial))
	copy(items, initial)
	return &Manager[T]{
		items: items,
		mode:  ModeListing,
		api:   api,
		idOf:  idOf,
	}
}

// WithConfirm installs a confirmation hook that must approve an item
// before Remove fires its request. Used by the resources whose console
// views show a confirmation modal before deleting.
func (m *Manager[T]) WithConfirm(confirm func(T) bool) *Manager[T] {
	m.confirm = confirm
	return m
}

// Items returns the current list
func (m *Manager[T]) Items() []T {
	return m.items
}

// Mode returns the current view mode
func (m *Manager[T]) Mode() Mode {
	return m.mode
}

// Editing returns the item being edited; only meaningful in ModeEditing
func (m *Manager[T]) Editing() T {
	return m.editing
}

// Add switches to the create view
func (m *Manager[T]) Add() {
	m.mode = ModeAdding
}

// Edit switches to the edit view for item
func (m *Manager[T]) Edit(item T) {
	m.editing = item
	m.mode = ModeEditing
}

// Cancel returns to the listing without touching the list
func (m *Manager[T]) Cancel() {
	var zero T
	m.editing = zero
	m.mode = ModeListing
}

// SubmitCreate sends the draft to the server and, on success, appends the
// returned row and returns to the listing. On failure the list and mode
// are unchanged and the error propagates for the form to display.
func (m *Manager[T]) SubmitCreate(ctx context.Context, draft T) (T, error) {
	created, err := m.api.Create(ctx, draft)
	if err != nil {
		var zero T
		return zero, err
	}

	m.items = append(m.items, created)
	m.Cancel()
	return created, nil
}

// SubmitUpdate sends the draft to the server and, on success, replaces the
// matching row by id and returns to the listing
func (m *Manager[T]) SubmitUpdate(ctx context.Context, draft T) (T, error) {
	id := m.idOf(draft)

	updated, err := m.api.Update(ctx, id, draft)
	if err != nil {
		var zero T
		return zero, err
	}

	for i := range m.items {
		if m.idOf(m.items[i]) == id {
			m.items[i] = updated
			break
		}
	}
	m.Cancel()
	return updated, nil
}

// Remove deletes the row with the given id, filtering it out of the list
// after the server confirms. When a confirmation hook is installed and
// declines, no request fires at all.
func (m *Manager[T]) Remove(ctx context.Context, id string) error {
	if m.confirm != nil {
		for _, item := range m.items {
			if m.idOf(item) == id {
				if !m.confirm(item) {
					return nil
				}
				break
			}
		}
	}

	if err := m.api.Delete(ctx, id); err != nil {
		return err
	}

	kept := m.items[:0]
	for _, item := range m.items {
		if m.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}
