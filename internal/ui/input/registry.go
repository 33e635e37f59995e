package input

import "sync"

// Registry maps normalized key identifiers to shortcuts. There is at most
// one shortcut per key; adding a key again replaces the earlier binding.
type Registry struct {
	mu        sync.RWMutex
	shortcuts []Shortcut
}

// NewRegistry creates a registry holding the given shortcuts
func NewRegistry(shortcuts ...Shortcut) *Registry {
	r := &Registry{}
	for _, s := range shortcuts {
		r.Add(s)
	}
	return r
}

// Add registers s, removing any shortcut bound to the same key first
func (r *Registry) Add(s Shortcut) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts = append(r.without(s.Key), s)
}

// Remove deletes the shortcut bound to key, if any
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shortcuts = r.without(key)
}

// Lookup returns the shortcut bound to key
func (r *Registry) Lookup(key string) (Shortcut, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shortcuts {
		if s.Key == key {
			return s, true
		}
	}
	return Shortcut{}, false
}

// All returns every shortcut in registration order
func (r *Registry) All() []Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Shortcut(nil), r.shortcuts...)
}

// ByCategory returns the shortcuts of one category in registration order
func (r *Registry) ByCategory(c Category) []Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Shortcut
	for _, s := range r.shortcuts {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}

func (r *Registry) without(key string) []Shortcut {
	out := make([]Shortcut, 0, len(r.shortcuts))
	for _, s := range r.shortcuts {
		if s.Key != key {
			out = append(out, s)
		}
	}
	return out
}
