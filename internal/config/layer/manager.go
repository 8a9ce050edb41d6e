package layer

import (
	"sort"
	"sync"
)

// Manager manages configuration layers and provides merged access.
type Manager struct {
	mu     sync.RWMutex
	layers []*Layer       // Sorted by priority (ascending)
	merged map[string]any // Cached merged result
	dirty  bool
}

// NewManager creates a new layer manager.
func NewManager() *Manager {
	return &Manager{dirty: true}
}

// AddLayer adds a layer, replacing any layer with the same name.
func (m *Manager) AddLayer(l *Layer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.layers {
		if existing.Name == l.Name {
			m.layers[i] = l
			m.sortLayers()
			m.dirty = true
			return
		}
	}
	m.layers = append(m.layers, l)
	m.sortLayers()
	m.dirty = true
}

// Layer returns a layer by name, or nil.
func (m *Manager) Layer(name string) *Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.find(name)
}

// Layers returns the layers sorted by priority.
func (m *Manager) Layers() []*Layer {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Layer, len(m.layers))
	copy(out, m.layers)
	return out
}

// Set sets a value in the named layer, creating the layer for known
// sources when it does not exist yet.
func (m *Manager) Set(source Source, path string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := m.find(source.String())
	if l == nil {
		l = New(source, nil)
		m.layers = append(m.layers, l)
		m.sortLayers()
	}
	SetByPath(l.Data, path, value)
	m.dirty = true
}

// Merge combines all layers into a single configuration map. The result
// is a copy and may be modified by the caller.
func (m *Manager) Merge() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneMap(m.mergedLocked())
}

func (m *Manager) mergedLocked() map[string]any {
	if m.dirty || m.merged == nil {
		result := make(map[string]any)
		for _, l := range m.layers {
			result = DeepMerge(result, l.Data)
		}
		m.merged = result
		m.dirty = false
	}
	return m.merged
}

// Get returns the effective value for a setting path and the layer it
// came from.
func (m *Manager) Get(path string) (any, *Layer, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.layers) - 1; i >= 0; i-- {
		if v, ok := GetByPath(m.layers[i].Data, path); ok {
			return v, m.layers[i], true
		}
	}
	return nil, nil, false
}

// WhichLayer returns the name of the layer providing path, or "".
func (m *Manager) WhichLayer(path string) string {
	_, l, ok := m.Get(path)
	if !ok {
		return ""
	}
	return l.Name
}

func (m *Manager) sortLayers() {
	sort.SliceStable(m.layers, func(i, j int) bool {
		return m.layers[i].Priority < m.layers[j].Priority
	})
}

func (m *Manager) find(name string) *Layer {
	for _, l := range m.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}
