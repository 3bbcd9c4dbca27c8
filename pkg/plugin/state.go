package plugin

import "sync"

// State is the per-run initialization state of the plugin. It is kept apart
// from the configuration, which stays read-only.
type State struct {
	mu          sync.Mutex
	initialized bool
}

// Initialized reports whether event handlers have been registered
func (s *State) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// MarkInitialized sets the flag. Only the first call returns true.
func (s *State) MarkInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return false
	}
	s.initialized = true
	return true
}
