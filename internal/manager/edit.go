package manager

// Mode is the edit session's state tag.
type Mode int

const (
	// Creating means the draft holds default values for a new record.
	Creating Mode = iota
	// Editing means the draft is a copy of an existing record's fields.
	Editing
)

// editSession tracks whether the manager is creating a new record or editing
// an existing one, and owns the draft form values. Exactly one record may be
// in edit at a time; a cancelled or submitted edit always lands back in
// Creating with a fresh default draft.
//
// The session is not safe for concurrent use on its own; the owning Manager
// serializes access.
type editSession[T any] struct {
	mode       Mode
	editingID  int64
	draft      T
	submitting bool
	newDraft   func() T
}

func newEditSession[T any](newDraft func() T) *editSession[T] {
	return &editSession[T]{
		mode:     Creating,
		draft:    newDraft(),
		newDraft: newDraft,
	}
}

// startCreate resets to Creating with a default draft.
func (s *editSession[T]) startCreate() {
	s.mode = Creating
	s.editingID = 0
	s.draft = s.newDraft()
}

// startEdit switches to Editing the given record, copying its fields into
// the draft. Any previous draft is discarded.
func (s *editSession[T]) startEdit(id int64, record T) {
	s.mode = Editing
	s.editingID = id
	s.draft = record
}

// editing returns the id under edit, if any.
func (s *editSession[T]) editing() (int64, bool) {
	if s.mode != Editing {
		return 0, false
	}
	return s.editingID, true
}
