package shell

import "sync"

// State is the mutable desktop state shared by UI commands and OS
// callbacks.
type State struct {
	mu             sync.Mutex
	pttAccelerator string
}

func NewState(accel string) *State {
	return &State{pttAccelerator: accel}
}

func (s *State) Accelerator() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pttAccelerator
}

// ReplaceAccelerator stores accel and returns the previous value.
func (s *State) ReplaceAccelerator(accel string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.pttAccelerator
	s.pttAccelerator = accel
	return prev
}
