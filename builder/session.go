package builder

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"folio/models"
)

// DefaultDebounce is how long the session waits after the last edit
// before persisting.
const DefaultDebounce = 1000 * time.Millisecond

type SessionState string

const (
	StateIdle    SessionState = "idle"
	StatePending SessionState = "pending" // debounce timer armed
	StateSaving  SessionState = "saving"  // persist call in flight
)

// PersistFunc writes the content plus title/description back to whatever
// store the embedder uses.
type PersistFunc func(content models.Content, title, description string) error

// TemplatePersistFunc saves a template switch. Template changes skip the
// debounce entirely.
type TemplatePersistFunc func(templateID string) error

// Status is a point-in-time snapshot of the save machinery.
type Status struct {
	State SessionState
	// Dirty stays set after a failed auto-save so embedders can show an
	// unsaved-changes indicator; the session itself never retries.
	Dirty bool
}

// SyncSession keeps an optimistic local copy of a portfolio's editable
// state and coalesces rapid edits into one persisted write. Every
// mutation lands locally at once; only the state after the quiet period
// is sent. An in-flight save is never aborted when a newer edit arrives -
// the newer edit simply arms the next cycle, and overlapping saves are
// resolved by whichever response lands last.
type SyncSession struct {
	mu sync.Mutex

	content     models.Content
	title       string
	description string
	templateID  string

	persist         PersistFunc
	persistTemplate TemplatePersistFunc
	delay           time.Duration

	timer   *time.Timer
	pending bool
	saving  bool
	dirty   bool
	closed  bool

	// gen counts local edits; a save only clears dirty when no edit
	// happened after its snapshot was taken.
	gen int64

	// version bumps on every local change so an embedder can key its
	// preview remounts off it. Template switches bump it too.
	version int64
}

type SessionOption func(*SyncSession)

func WithDebounce(d time.Duration) SessionOption {
	return func(s *SyncSession) { s.delay = d }
}

func WithTemplate(id string, persist TemplatePersistFunc) SessionOption {
	return func(s *SyncSession) {
		s.templateID = id
		s.persistTemplate = persist
	}
}

func NewSyncSession(content models.Content, title, description string, persist PersistFunc, opts ...SessionOption) *SyncSession {
	s := &SyncSession{
		content:     content,
		title:       title,
		description: description,
		persist:     persist,
		delay:       DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mutate applies one field edit to the local copy and (re)arms the
// debounce timer. The local state changes even when a save is in flight.
// Only an unresolvable path errors; there is no validation gate on
// values.
func (s *SyncSession) Mutate(path string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("session closed")
	}

	if err := Apply(&s.content, path, value); err != nil {
		return err
	}

	s.touchLocked()
	return nil
}

// RemoveAt drops a list element ("projects.1", "personalInfo.socials.0").
func (s *SyncSession) RemoveAt(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("session closed")
	}

	if err := Remove(&s.content, path); err != nil {
		return err
	}

	s.touchLocked()
	return nil
}

func (s *SyncSession) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.title = title
	s.touchLocked()
}

func (s *SyncSession) SetDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.description = description
	s.touchLocked()
}

// touchLocked registers a local edit: bump counters, mark dirty, reset
// the debounce window.
func (s *SyncSession) touchLocked() {
	s.gen++
	s.version++
	s.dirty = true
	s.pending = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.autoSave)
}

// autoSave is the debounce expiry path. Failures are logged and dropped;
// the dirty flag stays set and the next edit starts a fresh cycle.
func (s *SyncSession) autoSave() {
	if err := s.save(); err != nil {
		log.Printf("auto-save failed: %v", err)
	}
}

// ForceSaveNow flushes the current state immediately, cancelling any
// armed timer. Unlike auto-save the error is returned, since manual
// saves surface failures to the user.
func (s *SyncSession) ForceSaveNow() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
	s.mu.Unlock()

	return s.save()
}

func (s *SyncSession) save() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("session closed")
	}
	snapshot := cloneContent(s.content)
	title := s.title
	description := s.description
	gen := s.gen
	s.pending = false
	s.saving = true
	s.mu.Unlock()

	err := s.persist(snapshot, title, description)

	s.mu.Lock()
	s.saving = false
	if err == nil && gen == s.gen {
		s.dirty = false
	}
	s.mu.Unlock()

	return err
}

// SetTemplate persists a template switch immediately, outside the content
// debounce cycle, and bumps the preview version so the embedder remounts
// the preview with the new template and the current local content. The
// local template id only changes after the persist succeeds.
func (s *SyncSession) SetTemplate(id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.New("session closed")
	}
	if s.templateID == id {
		s.mu.Unlock()
		return nil
	}
	persist := s.persistTemplate
	s.mu.Unlock()

	if persist != nil {
		if err := persist(id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.templateID = id
	s.version++
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the local editable state.
func (s *SyncSession) Snapshot() (content models.Content, title, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneContent(s.content), s.title, s.description
}

func (s *SyncSession) TemplateID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.templateID
}

// Version increments on every local change; preview remounts key off it.
func (s *SyncSession) Version() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

func (s *SyncSession) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := StateIdle
	switch {
	case s.saving:
		state = StateSaving
	case s.pending:
		state = StatePending
	}
	return Status{State: state, Dirty: s.dirty}
}

// Close stops the timer. Unsaved edits are not flushed; they remain
// visible through Status().Dirty.
func (s *SyncSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = false
	s.closed = true
}

// cloneContent deep-copies via JSON so an in-flight save never reads
// slices a later edit is appending to.
func cloneContent(c models.Content) models.Content {
	raw, err := json.Marshal(c)
	if err != nil {
		return c
	}
	var out models.Content
	if err := json.Unmarshal(raw, &out); err != nil {
		return c
	}
	return out
}
