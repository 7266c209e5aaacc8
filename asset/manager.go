package asset

import (
	"log/slog"
	"sync"
)

// Manager tracks a batch of loads. OnLoad fires exactly once, when every
// started item has finished successfully. A failed item reports OnError
// and keeps OnLoad from ever firing for the batch.
//
// Callbacks are delivered one at a time and in order: the OnProgress of
// the last item precedes OnLoad. They must not call back into the
// manager. Start every item before any of them can finish.
type Manager struct {
	OnStart    func(name string, loaded, total int)
	OnProgress func(name string, loaded, total int)
	OnLoad     func()
	OnError    func(name string, err error)

	logger *slog.Logger

	// dispatch serializes state changes together with their callbacks.
	dispatch sync.Mutex

	mu      sync.Mutex
	pending map[string]struct{}
	loaded  int
	total   int
	failed  bool
	fired   bool
}

func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:  logger,
		pending: make(map[string]struct{}),
	}
}

// ItemStart registers an item. Starting a name that is already pending
// has no effect.
func (m *Manager) ItemStart(name string) {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()

	m.mu.Lock()
	if _, ok := m.pending[name]; ok || m.fired {
		m.mu.Unlock()
		return
	}
	m.pending[name] = struct{}{}
	m.total++
	loaded, total := m.loaded, m.total
	m.mu.Unlock()

	m.logger.Debug("Loading model",
		slog.String("name", name),
		slog.Int("loaded", loaded),
		slog.Int("total", total),
	)
	if m.OnStart != nil {
		m.OnStart(name, loaded, total)
	}
}

// ItemEnd marks a pending item as successfully loaded.
func (m *Manager) ItemEnd(name string) {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()

	m.mu.Lock()
	if _, ok := m.pending[name]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.pending, name)
	m.loaded++
	loaded, total := m.loaded, m.total
	complete := !m.failed && !m.fired && loaded == total
	if complete {
		m.fired = true
	}
	m.mu.Unlock()

	m.logger.Debug("Loaded model",
		slog.String("name", name),
		slog.Int("loaded", loaded),
		slog.Int("total", total),
	)
	if m.OnProgress != nil {
		m.OnProgress(name, loaded, total)
	}
	if complete {
		m.logger.Info("All models loaded", slog.Int("total", total))
		if m.OnLoad != nil {
			m.OnLoad()
		}
	}
}

// ItemError marks a pending item as failed.
func (m *Manager) ItemError(name string, err error) {
	m.dispatch.Lock()
	defer m.dispatch.Unlock()

	m.mu.Lock()
	if _, ok := m.pending[name]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.pending, name)
	m.failed = true
	m.mu.Unlock()

	m.logger.Error("Failed to load model",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
	if m.OnError != nil {
		m.OnError(name, err)
	}
}

// Loaded reports how many items have finished and how many were started.
func (m *Manager) Loaded() (loaded, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded, m.total
}

// Failed reports whether any item of the batch failed.
func (m *Manager) Failed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failed
}
