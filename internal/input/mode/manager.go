package mode

import "sync"

// Manager holds the current mode and performs transitions.
type Manager struct {
	mu sync.RWMutex

	// current is the active mode.
	current Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a manager starting in Command mode.
func NewManager() *Manager {
	return &Manager{current: Command}
}

// Current returns the current mode.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// EnterInsert switches to Insert mode.
func (m *Manager) EnterInsert() {
	m.Switch(Insert)
}

// EnterCommand switches to Command mode.
func (m *Manager) EnterCommand() {
	m.Switch(Command)
}

// Switch changes to the given mode. It is a no-op when to is already
// active or is not a defined mode.
func (m *Manager) Switch(to Mode) {
	m.mu.Lock()
	if !to.Valid() || m.current == to {
		m.mu.Unlock()
		return
	}

	from := m.current
	m.current = to

	// Copy callbacks to call outside of lock
	callbacks := make([]ModeChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(from, to)
		}
	}
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// CursorStyle returns the cursor style hint for the current mode.
func (m *Manager) CursorStyle() CursorStyle {
	return m.Current().CursorStyle()
}
