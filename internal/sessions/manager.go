package sessions

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/alert"
	"restaurant/internal/core/domain/model/kernel"
)

var (
	ErrSessionAlreadyOpen = errors.New("kitchen session already open for branch")
	ErrSessionNotFound    = errors.New("no open kitchen session for branch")
)

// Manager keeps at most one open kitchen session per branch.
type Manager struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*KitchenSession

	queueHandler  QueueReader
	signal        alert.Signal
	pollSchedule  string
	alertInterval time.Duration
	logger        *slog.Logger
}

// NewManager creates a session manager. All sessions share the signal, the
// poll schedule and the alert interval.
func NewManager(
	queueHandler QueueReader,
	signal alert.Signal,
	pollSchedule string,
	alertInterval time.Duration,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		sessions:      make(map[kernel.UUID]*KitchenSession),
		queueHandler:  queueHandler,
		signal:        signal,
		pollSchedule:  pollSchedule,
		alertInterval: alertInterval,
		logger:        logger,
	}
}

// Open creates and starts a session for the branch. A second open for the
// same branch fails; the existing session keeps running.
func (m *Manager) Open(branchID kernel.UUID) (*KitchenSession, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[branchID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionAlreadyOpen, branchID)
	}

	session, err := NewKitchenSession(
		branchID, m.queueHandler, m.signal, m.pollSchedule, m.alertInterval, m.logger)
	if err != nil {
		return nil, err
	}
	if err := session.Open(); err != nil {
		return nil, err
	}

	m.sessions[branchID] = session
	return session, nil
}

// Get returns the branch's open session.
func (m *Manager) Get(branchID kernel.UUID) (*KitchenSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[branchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, branchID)
	}
	return session, nil
}

// Close stops and removes the branch's session.
func (m *Manager) Close(branchID kernel.UUID) error {
	m.mu.Lock()
	session, ok := m.sessions[branchID]
	if ok {
		delete(m.sessions, branchID)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, branchID)
	}

	session.Close()
	return nil
}

// CloseAll stops every open session, for shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := make([]*KitchenSession, 0, len(m.sessions))
	for id, s := range m.sessions {
		sessions = append(sessions, s)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
