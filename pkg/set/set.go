package set

import "sync"

// Set is a string set which remembers insertion order.
type Set struct {
	mu    sync.Mutex
	m     map[string]struct{}
	order []string
}

func (s *Set) Contains(val string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[val]
	return ok
}

// Add reports whether val was not present before.
func (s *Set) Add(val string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[val]; ok {
		return false
	}
	s.m[val] = struct{}{}
	s.order = append(s.order, val)
	return true
}

func (s *Set) Remove(val string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[val]; !ok {
		return
	}
	delete(s.m, val)
	for i, v := range s.order {
		if v == val {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Values returns the members in insertion order.
func (s *Set) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

func New(vals ...string) *Set {
	s := &Set{
		m: make(map[string]struct{}),
	}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}
