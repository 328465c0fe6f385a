package analysis

import "fmt"

// MacroRegistry assigns each distinct conditional macro name a dense integer
// ID usable as a bit offset in a BitSet. IDs are allocated in discovery order,
// so the same input always yields the same mapping.
type MacroRegistry struct {
	ids   map[string]int
	names []string
}

// NewMacroRegistry creates an empty registry.
func NewMacroRegistry() *MacroRegistry {
	return &MacroRegistry{ids: make(map[string]int)}
}

// IDFor returns the ID for name, allocating the next free ID on first sight.
// It fails once the number of distinct names would exceed MacroLimit.
func (r *MacroRegistry) IDFor(name string) (int, error) {
	if id, ok := r.ids[name]; ok {
		return id, nil
	}
	if len(r.names) >= MacroLimit {
		return 0, &AnalysisError{
			Kind:    ErrKindCapacity,
			Message: fmt.Sprintf("more than %d distinct conditional macros", MacroLimit),
		}
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id, nil
}

// Lookup returns the ID for name without allocating one.
func (r *MacroRegistry) Lookup(name string) (int, bool) {
	id, ok := r.ids[name]
	return id, ok
}

// Name returns the macro name registered under id, or "" if unknown.
func (r *MacroRegistry) Name(id int) string {
	if id < 0 || id >= len(r.names) {
		return ""
	}
	return r.names[id]
}

// Len returns the number of registered macros.
func (r *MacroRegistry) Len() int { return len(r.names) }
