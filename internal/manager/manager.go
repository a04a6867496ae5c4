// Package manager implements the admin dashboard's list/detail pattern once,
// generically: a remote collection client, a local mirror of server state, an
// edit session and the action dispatcher tying them together. Each resource
// (bookings, items, gallery, ...) is an instantiation with a small Config.
package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/go-playground/validator/v10"

	"pse_restaurant_admin/internal/store"
	"pse_restaurant_admin/internal/view"
)

var (
	// ErrSubmitInFlight is returned when a submit starts while another one
	// for the same manager has not resolved yet.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrActionInFlight is returned when an action targets a record that
	// already has its own action outstanding.
	ErrActionInFlight = errors.New("an action for this record is already in flight")

	// ErrAborted means the operator declined a confirmation or cancelled a
	// prompt. The action is a no-op, not a failure.
	ErrAborted = errors.New("aborted by operator")

	// ErrNotInMirror is returned when an action references an id the mirror
	// does not hold.
	ErrNotInMirror = errors.New("record not present in local mirror")

	// ErrDraftInvalid wraps client-side required-field validation failures
	// caught before any network call is made.
	ErrDraftInvalid = errors.New("draft failed validation")

	// ErrInvalidTransition is returned for a status change the lifecycle
	// does not allow.
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// Collection is the remote client for one resource, satisfied by api.Collection.
type Collection[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, id int64, draft T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Uploader resolves an image attachment into a URL before create/update.
type Uploader interface {
	Upload(ctx context.Context, filename string, content io.Reader) (string, error)
}

// Notifier receives the user-facing outcome of each action.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// Prompter collects operator decisions: delete confirmations and the
// rejection reason for booking rejections.
type Prompter interface {
	Confirm(message string) bool
	Prompt(message string) (reason string, ok bool)
}

// StaticPrompter answers with pre-collected decisions. The HTTP surface uses
// it because the browser already confirmed before the request was sent.
type StaticPrompter struct {
	Confirmed bool
	Reason    string
	HasReason bool
}

func (p StaticPrompter) Confirm(string) bool          { return p.Confirmed }
func (p StaticPrompter) Prompt(string) (string, bool) { return p.Reason, p.HasReason }

// ImageAttachment is an optional file accompanying a submit.
type ImageAttachment struct {
	Filename string
	Content  io.Reader
}

// Config describes one resource instantiation.
type Config[T any] struct {
	// Name is the singular resource name used in notifications, e.g. "booking".
	Name     string
	PageSize int

	// Key extracts the server-assigned identifying field.
	Key func(T) int64

	// SearchText projects a record onto the concatenation of its searchable
	// fields. Status and Date may be nil when the resource has no such filter.
	SearchText func(T) string
	Status     func(T) string
	Date       func(T) string

	// NewDraft returns the default form values for a new record.
	NewDraft func() T

	// SortOnLoad, when set, reorders the freshly fetched collection before it
	// is mirrored (e.g. weekly menus newest first).
	SortOnLoad func([]T)

	// SetImageURL stitches an uploaded image URL into the draft. Nil for
	// resources without images.
	SetImageURL func(draft *T, url string)

	// PrepareDraft, when set, normalizes derived fields right before
	// validation (e.g. gallery published_at from status).
	PrepareDraft func(draft *T)

	// ValidateDraft, when set, runs cross-field checks the binding tags
	// cannot express (e.g. from_date <= to_date).
	ValidateDraft func(draft T) error
}

// validate shares one validator across all managers, reusing the same
// binding tags gin checks at the HTTP boundary.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Manager composes the remote client, mirror, edit session and view filter
// for one resource and dispatches user-triggered actions end to end.
type Manager[T any] struct {
	cfg     Config[T]
	remote  Collection[T]
	uploads Uploader
	mirror  *store.Mirror[T]
	notify  Notifier

	mu       sync.Mutex
	edit     *editSession[T]
	inFlight map[int64]bool
	loaded   bool
}

// New creates a manager. uploads may be nil for resources without images.
func New[T any](cfg Config[T], remote Collection[T], uploads Uploader, notify Notifier) *Manager[T] {
	if notify == nil {
		notify = NopNotifier{}
	}
	return &Manager[T]{
		cfg:      cfg,
		remote:   remote,
		uploads:  uploads,
		mirror:   store.NewMirror(cfg.Key),
		notify:   notify,
		edit:     newEditSession(cfg.NewDraft),
		inFlight: make(map[int64]bool),
	}
}

// Name returns the resource's singular name.
func (m *Manager[T]) Name() string { return m.cfg.Name }

// Mirror exposes the local mirror store.
func (m *Manager[T]) Mirror() *store.Mirror[T] { return m.mirror }

// Load fetches the full collection and replaces the mirror. This is the only
// operation that refetches; every later mutation patches the mirror in place.
func (m *Manager[T]) Load(ctx context.Context) error {
	records, err := m.remote.List(ctx)
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to load %ss", m.cfg.Name))
		return err
	}
	if m.cfg.SortOnLoad != nil {
		m.cfg.SortOnLoad(records)
	}
	m.mirror.ReplaceAll(records)
	m.mu.Lock()
	m.loaded = true
	m.mu.Unlock()
	return nil
}

// Loaded reports whether an initial fetch has completed. An empty backend
// collection still counts as loaded.
func (m *Manager[T]) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// View computes the visible page for the given query from the mirror,
// synchronously and without network.
func (m *Manager[T]) View(q view.Query) view.Page[T] {
	return view.Apply(m.mirror.All(), q, view.Projection[T]{
		SearchText: m.cfg.SearchText,
		Status:     m.cfg.Status,
		Date:       m.cfg.Date,
	}, m.cfg.PageSize)
}

// StartCreate resets the edit session to a default draft.
func (m *Manager[T]) StartCreate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edit.startCreate()
}

// StartEdit copies the mirrored record with the given id into the draft.
func (m *Manager[T]) StartEdit(id int64) error {
	record, ok := m.mirror.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrNotInMirror, m.cfg.Name, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edit.startEdit(id, record)
	return nil
}

// Cancel discards the draft and returns to Creating.
func (m *Manager[T]) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edit.startCreate()
}

// SetDraft replaces the draft form values.
func (m *Manager[T]) SetDraft(draft T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.edit.draft = draft
}

// Draft returns the current draft form values.
func (m *Manager[T]) Draft() T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.edit.draft
}

// Editing returns the id under edit, if the session is in Editing mode.
func (m *Manager[T]) Editing() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.edit.editing()
}

// save runs the validate, upload and persist pipeline shared by every submit
// entry point. On success the mirror is patched with the server's canonical
// record (never the local draft); on failure the mirror is left untouched.
func (m *Manager[T]) save(ctx context.Context, draft T, editingID int64, isEdit bool, image *ImageAttachment) (T, error) {
	var zero T

	if m.cfg.PrepareDraft != nil {
		m.cfg.PrepareDraft(&draft)
	}
	if err := validate.Struct(draft); err != nil {
		m.notify.Error(fmt.Sprintf("Please fill in all required %s fields", m.cfg.Name))
		return zero, fmt.Errorf("%w: %v", ErrDraftInvalid, err)
	}
	if m.cfg.ValidateDraft != nil {
		if err := m.cfg.ValidateDraft(draft); err != nil {
			m.notify.Error(err.Error())
			return zero, fmt.Errorf("%w: %v", ErrDraftInvalid, err)
		}
	}

	if image != nil && m.uploads != nil && m.cfg.SetImageURL != nil {
		url, err := m.uploads.Upload(ctx, image.Filename, image.Content)
		if err != nil {
			m.notify.Error("Image upload failed")
			return zero, err
		}
		m.cfg.SetImageURL(&draft, url)
	}

	var (
		saved T
		err   error
	)
	if isEdit {
		saved, err = m.remote.Update(ctx, editingID, draft)
	} else {
		saved, err = m.remote.Create(ctx, draft)
	}
	if err != nil {
		m.notify.Error(fmt.Sprintf("Failed to save %s", m.cfg.Name))
		return zero, err
	}

	m.mirror.Upsert(saved)
	if isEdit {
		m.notify.Success(fmt.Sprintf("%s updated successfully", title(m.cfg.Name)))
	} else {
		m.notify.Success(fmt.Sprintf("%s created successfully", title(m.cfg.Name)))
	}
	return saved, nil
}

// Submit dispatches the edit session's draft as a create or update depending
// on the session's mode, and resets the session to Creating on success. It
// serves a single interactive operator; request-scoped callers use SubmitNew
// and SubmitUpdate with their own drafts instead.
func (m *Manager[T]) Submit(ctx context.Context, image *ImageAttachment) (T, error) {
	var zero T

	m.mu.Lock()
	if m.edit.submitting {
		m.mu.Unlock()
		return zero, ErrSubmitInFlight
	}
	m.edit.submitting = true
	draft := m.edit.draft
	editingID, isEdit := m.edit.editing()
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.edit.submitting = false
		m.mu.Unlock()
	}()

	saved, err := m.save(ctx, draft, editingID, isEdit, image)
	if err != nil {
		return zero, err
	}

	m.mu.Lock()
	m.edit.startCreate()
	m.mu.Unlock()
	return saved, nil
}

// SubmitNew dispatches a caller-owned draft as a create. It never touches
// the shared edit session, so concurrent submissions cannot cross drafts.
func (m *Manager[T]) SubmitNew(ctx context.Context, draft T, image *ImageAttachment) (T, error) {
	return m.save(ctx, draft, 0, false, image)
}

// SubmitUpdate dispatches a caller-owned draft as an update of the given id.
// A second update of the same record while one is outstanding is refused;
// updates of different records are independent.
func (m *Manager[T]) SubmitUpdate(ctx context.Context, id int64, draft T, image *ImageAttachment) (T, error) {
	var zero T

	if _, ok := m.mirror.Get(id); !ok {
		return zero, fmt.Errorf("%w: %s %d", ErrNotInMirror, m.cfg.Name, id)
	}
	if !m.acquire(id) {
		return zero, fmt.Errorf("%w: %s %d", ErrActionInFlight, m.cfg.Name, id)
	}
	defer m.release(id)

	return m.save(ctx, draft, id, true, image)
}

// Delete asks for confirmation, then removes the record remotely and from
// the mirror. A declined confirmation is a no-op.
func (m *Manager[T]) Delete(ctx context.Context, prompts Prompter, id int64) error {
	if !prompts.Confirm(fmt.Sprintf("Are you sure you want to delete this %s?", m.cfg.Name)) {
		return ErrAborted
	}
	if !m.acquire(id) {
		return fmt.Errorf("%w: %s %d", ErrActionInFlight, m.cfg.Name, id)
	}
	defer m.release(id)

	if err := m.remote.Delete(ctx, id); err != nil {
		m.notify.Error(fmt.Sprintf("Failed to delete %s", m.cfg.Name))
		return err
	}
	m.mirror.Remove(id)

	m.mu.Lock()
	if editingID, ok := m.edit.editing(); ok && editingID == id {
		m.edit.startCreate()
	}
	m.mu.Unlock()

	m.notify.Success(fmt.Sprintf("%s deleted successfully", title(m.cfg.Name)))
	return nil
}

// acquire marks a record's action as in flight. Actions on different records
// are independent; a second action on the same record is refused.
func (m *Manager[T]) acquire(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inFlight[id] {
		return false
	}
	m.inFlight[id] = true
	return true
}

func (m *Manager[T]) release(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, id)
}
