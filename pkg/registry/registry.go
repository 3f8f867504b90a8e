package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrToolNotFound is returned when a lookup or toggle names an unknown id.
var ErrToolNotFound = errors.New("tool not found")

// Registry holds the mutable tool catalog. Tools are seeded once at
// construction; the only runtime mutations are Toggle and Add, issued by
// sequential admin actions. Reads return snapshots.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// New constructs a registry seeded with the provided tools. Entries with an
// empty or duplicate id are skipped silently.
func New(tools []Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, tool := range tools {
		id := strings.TrimSpace(tool.ID)
		if id == "" {
			continue
		}
		if _, exists := r.tools[id]; exists {
			continue
		}
		r.tools[id] = tool
		r.order = append(r.order, id)
	}
	return r
}

// NewDefault constructs a registry seeded with the full built-in catalog.
func NewDefault() *Registry {
	return New(DefaultCatalog())
}

// List returns the tools matching both predicates, in catalog order.
// Category is an exact match ("" or "All" match everything); query is a
// case-insensitive substring match over name or description.
func (r *Registry) List(category, query string) []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.TrimSpace(query)
	out := make([]Tool, 0, len(r.order))
	for _, id := range r.order {
		tool := r.tools[id]
		if tool.matchesCategory(category) && tool.matchesQuery(query) {
			out = append(out, tool)
		}
	}
	return out
}

// Get returns the descriptor for the given id.
func (r *Registry) Get(id string) (Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[id]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	return tool, nil
}

// FindByName returns the first tool whose name matches case-insensitively.
func (r *Registry) FindByName(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if strings.EqualFold(r.tools[id].Name, strings.TrimSpace(name)) {
			return r.tools[id], true
		}
	}
	return Tool{}, false
}

// Toggle flips the enabled flag and returns the updated descriptor.
// The implemented flag is never touched.
func (r *Registry) Toggle(id string) (Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tool, ok := r.tools[id]
	if !ok {
		return Tool{}, fmt.Errorf("%w: %s", ErrToolNotFound, id)
	}
	tool.Enabled = !tool.Enabled
	r.tools[id] = tool
	return tool, nil
}

// Add appends a new enabled, unimplemented placeholder descriptor and
// returns it. Duplicate names are permitted; ids are always unique.
func (r *Registry) Add(name, category string) Tool {
	r.mu.Lock()
	defer r.mu.Unlock()

	tool := Tool{
		ID:          r.nextID(name),
		Name:        strings.TrimSpace(name),
		Description: fmt.Sprintf("A custom tool for %s.", strings.TrimSpace(category)),
		Category:    strings.TrimSpace(category),
		Implemented: false,
		Enabled:     true,
		Handler:     Placeholder(),
	}
	r.tools[tool.ID] = tool
	r.order = append(r.order, tool.ID)
	return tool
}

// Categories returns the distinct categories in first-seen catalog order.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, id := range r.order {
		cat := r.tools[id].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	return out
}

// Names returns every tool name in catalog order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tools[id].Name)
	}
	return out
}

// Len reports the number of cataloged tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// nextID derives a unique id from the tool name. Callers must hold r.mu.
func (r *Registry) nextID(name string) string {
	base := slugify(name)
	if base == "" {
		base = "tool"
	}
	id := base
	for n := 2; ; n++ {
		if _, exists := r.tools[id]; !exists {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func slugify(name string) string {
	var b strings.Builder
	for _, ch := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '-' || ch == '_':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
