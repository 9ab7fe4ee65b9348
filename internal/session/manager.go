package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/fitverse/internal/records"
	"github.com/claude/fitverse/internal/workout"
)

// Manager holds one Session per user and owns the one-second clock
// that drives each session's timer. The clock is attached when a
// workout starts or the timer resumes, and detached on pause, finish,
// and discard — a tick source must never outlive the state it drives.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	clocks   map[string]context.CancelFunc

	interval time.Duration
	store    Persistence
	records  records.Store
	profiles ProfileSource
	log      *slog.Logger
}

// NewManager creates a session manager ticking at the given interval
// (one second in production; tests shorten it).
func NewManager(store Persistence, recordStore records.Store, profiles ProfileSource, interval time.Duration, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Manager{
		sessions: map[string]*Session{},
		clocks:   map[string]context.CancelFunc{},
		interval: interval,
		store:    store,
		records:  recordStore,
		profiles: profiles,
		log:      log,
	}
}

// Session returns the user's session, creating an idle one on first
// use.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionLocked(userID)
}

func (m *Manager) sessionLocked(userID string) *Session {
	s, ok := m.sessions[userID]
	if !ok {
		s = New(userID, m.store, m.records, m.profiles, m.log)
		m.sessions[userID] = s
	}
	return s
}

// Start begins an empty workout for the user and attaches the clock.
func (m *Manager) Start(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionLocked(userID)
	if err := s.Start(); err != nil {
		return err
	}
	m.attachClockLocked(userID, s)
	return nil
}

// StartFromTemplate begins a template workout and attaches the clock.
func (m *Manager) StartFromTemplate(userID string, tpl workout.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionLocked(userID)
	if err := s.StartFromTemplate(tpl); err != nil {
		return err
	}
	m.attachClockLocked(userID, s)
	return nil
}

// Pause stops the user's timer and detaches the clock.
func (m *Manager) Pause(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessionLocked(userID).PauseTimer()
	m.detachClockLocked(userID)
}

// Resume restarts the user's timer and reattaches the clock.
func (m *Manager) Resume(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessionLocked(userID)
	s.StartTimer()
	if s.TimerRunning() {
		m.attachClockLocked(userID, s)
	}
}

// Finish finalizes the user's workout. The clock is detached only when
// the finish succeeds: a failed finish leaves the session active and
// still ticking.
func (m *Manager) Finish(ctx context.Context, userID, photoURL string) (workout.Workout, error) {
	m.mu.Lock()
	s := m.sessionLocked(userID)
	m.mu.Unlock()

	// Finish performs collaborator I/O; do not hold the manager lock.
	finished, err := s.Finish(ctx, photoURL)
	if err != nil {
		return workout.Workout{}, err
	}

	m.mu.Lock()
	m.detachClockLocked(userID)
	m.mu.Unlock()
	return finished, nil
}

// Discard drops the user's workout and detaches the clock.
func (m *Manager) Discard(userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.sessionLocked(userID).Discard(); err != nil {
		return err
	}
	m.detachClockLocked(userID)
	return nil
}

// Shutdown detaches every running clock.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for userID := range m.clocks {
		m.detachClockLocked(userID)
	}
}

func (m *Manager) attachClockLocked(userID string, s *Session) {
	if _, running := m.clocks[userID]; running {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.clocks[userID] = cancel

	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}()
}

func (m *Manager) detachClockLocked(userID string) {
	if cancel, ok := m.clocks[userID]; ok {
		cancel()
		delete(m.clocks, userID)
	}
}
