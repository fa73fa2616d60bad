package search

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-phonebook/internal/logger"
	"github.com/MKhiriev/go-phonebook/models"
)

// HistoryPersister loads and stores the history list. Implementations may
// fail; the session logs the error and keeps working from memory.
type HistoryPersister interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, history []string) error
}

// Session is the search state of one directory view: the active query, the
// in-memory history and the single pending debounce commit.
//
// All methods are safe for concurrent use. Close must be called when the
// view goes away; it cancels the pending commit without committing and
// waits for a commit that is already running.
type Session struct {
	ctx       context.Context
	persister HistoryPersister
	delay     time.Duration
	log       *logger.Logger

	mu         sync.Mutex
	query      string
	history    []string
	focused    bool
	suppressed bool
	closed     bool

	timer   *time.Timer
	gen     uint64
	pending sync.WaitGroup

	version uint64

	saveMu       sync.Mutex
	savedVersion uint64
}

// NewSession creates a session and loads the stored history through
// persister. A load failure leaves the session with an empty history.
// A non-positive delay selects [DefaultDebounce].
func NewSession(ctx context.Context, persister HistoryPersister, delay time.Duration, log *logger.Logger) *Session {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	s := &Session{
		ctx:       ctx,
		persister: persister,
		delay:     delay,
		log:       log,
		history:   []string{},
	}

	stored, err := persister.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("func", "Session.NewSession").Msg("search history unavailable, continuing in memory")
		return s
	}
	s.history = Sanitize(stored)

	return s
}

// Delay returns the debounce period.
func (s *Session) Delay() time.Duration {
	return s.delay
}

// Query returns the active query.
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// History returns a copy of the history, most recent first.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.history)
}

// Results filters contacts by the active query.
func (s *Session) Results(contacts []models.Contact) []models.Contact {
	return Filter(contacts, s.Query())
}

// ShowHistoryPanel reports whether the history panel should be visible: the
// input is focused, the query is blank, the history is not empty and no
// history entry was selected since the input last regained focus.
func (s *Session) ShowHistoryPanel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused && !s.suppressed && strings.TrimSpace(s.query) == "" && len(s.history) > 0
}

// Focus marks the input as focused. With a blank query it lifts the panel
// suppression set by [Session.SelectHistory] or [Session.Submit].
func (s *Session) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = true
	if strings.TrimSpace(s.query) == "" {
		s.suppressed = false
	}
}

// Blur marks the input as not focused.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focused = false
}

// SetQuery handles a keystroke: it replaces the active query and restarts
// the debounce window. A blank query cancels the pending commit.
func (s *Session) SetQuery(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = text
	s.scheduleLocked(text)
}

// ScheduleCommit cancels any pending commit and schedules query to be
// recorded after the debounce period.
func (s *Session) ScheduleCommit(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scheduleLocked(query)
}

// CancelPending drops the pending commit, if any, without committing it.
func (s *Session) CancelPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

// HasPending reports whether a debounce commit is scheduled.
func (s *Session) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Submit handles an explicit search action. A non-blank query is committed
// immediately, the pending commit is cancelled and the panel is hidden.
// A blank query behaves like [Session.Focus].
func (s *Session) Submit() {
	s.mu.Lock()
	if strings.TrimSpace(s.query) == "" {
		s.focused = true
		s.suppressed = false
		s.mu.Unlock()
		return
	}

	s.cancelLocked()
	s.suppressed = true
	version, snapshot := s.mutateLocked(Record(s.history, s.query))
	s.mu.Unlock()

	s.flush(version, snapshot)
}

// SelectHistory makes entry the active query and promotes it to the front of
// the history. The panel stays hidden until the query is cleared and the
// input is focused again.
func (s *Session) SelectHistory(entry string) {
	s.mu.Lock()
	s.cancelLocked()
	s.query = entry
	s.suppressed = true
	version, snapshot := s.mutateLocked(Record(s.history, entry))
	s.mu.Unlock()

	s.flush(version, snapshot)
}

// RemoveEntry deletes entry from the history.
func (s *Session) RemoveEntry(entry string) {
	s.mu.Lock()
	version, snapshot := s.mutateLocked(Remove(s.history, entry))
	s.mu.Unlock()

	s.flush(version, snapshot)
}

// ClearHistory empties the history.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	version, snapshot := s.mutateLocked(Clear())
	s.mu.Unlock()

	s.flush(version, snapshot)
}

// Close cancels the pending commit without committing it and waits for a
// commit that has already started. Later keystrokes are not scheduled.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancelLocked()
	s.mu.Unlock()

	s.pending.Wait()
}

func (s *Session) scheduleLocked(query string) {
	s.cancelLocked()

	query = strings.TrimSpace(query)
	if query == "" || s.closed {
		return
	}

	s.gen++
	gen := s.gen
	s.pending.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		s.commit(gen, query)
	})
}

func (s *Session) cancelLocked() {
	if s.timer == nil {
		return
	}
	if s.timer.Stop() {
		// the callback will never run
		s.pending.Done()
	}
	s.timer = nil
	s.gen++
}

func (s *Session) commit(gen uint64, query string) {
	defer s.pending.Done()

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	version, snapshot := s.mutateLocked(Record(s.history, query))
	s.mu.Unlock()

	s.log.Debug().Str("func", "Session.commit").Str("query", query).Msg("debounced query recorded")
	s.flush(version, snapshot)
}

func (s *Session) mutateLocked(next []string) (uint64, []string) {
	s.history = next
	s.version++
	return s.version, slices.Clone(next)
}

// flush persists snapshot unless a newer version has already been saved.
func (s *Session) flush(version uint64, snapshot []string) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if version <= s.savedVersion {
		return
	}
	s.savedVersion = version

	if err := s.persister.Save(s.ctx, snapshot); err != nil {
		s.log.Warn().Err(err).Str("func", "Session.flush").Msg("failed to persist search history, keeping it in memory")
	}
}
