package template

import (
	"sort"
	"sync"
)

// Registry maps template IDs to renderer factories. Built-in templates are
// registered at construction; custom bundles are swapped in as a set so a
// failed reload never leaves the registry half-updated.
type Registry struct {
	mu        sync.RWMutex
	builtin   map[string]entry
	custom    map[string]entry
	defaultID string
}

type entry struct {
	info    Info
	factory Factory
}

// NewRegistry creates a registry with the built-in templates registered and
// "classic" as the default.
func NewRegistry(pdf PDFSettings) (*Registry, error) {
	r := &Registry{
		builtin:   make(map[string]entry),
		custom:    make(map[string]entry),
		defaultID: "classic",
	}
	for _, layout := range builtinLayouts() {
		if err := r.Register(layoutFactory(layout, pdf)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// layoutFactory wraps a layout into a Factory. Parsing happens once; the
// renderer is stateless and shared.
func layoutFactory(layout Layout, pdf PDFSettings) Factory {
	var (
		once     sync.Once
		renderer Renderer
		err      error
	)
	return func() (Renderer, error) {
		once.Do(func() {
			renderer, err = NewRenderer(layout, pdf)
		})
		return renderer, err
	}
}

// Register adds a factory under its template ID. The factory is invoked once
// to validate the template and capture its metadata.
func (r *Registry) Register(factory Factory) error {
	renderer, err := factory()
	if err != nil {
		return err
	}
	info := renderer.Info()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builtin[info.ID]; exists {
		return &DuplicateTemplateError{ID: info.ID}
	}
	r.builtin[info.ID] = entry{info: info, factory: factory}
	return nil
}

// ReplaceCustom swaps the whole custom template set atomically.
func (r *Registry) ReplaceCustom(factories []Factory) error {
	next := make(map[string]entry, len(factories))
	for _, factory := range factories {
		renderer, err := factory()
		if err != nil {
			return err
		}
		info := renderer.Info()
		if _, dup := next[info.ID]; dup {
			return &DuplicateTemplateError{ID: info.ID}
		}
		next[info.ID] = entry{info: info, factory: factory}
	}

	r.mu.Lock()
	r.custom = next
	r.mu.Unlock()
	return nil
}

// New returns a renderer for the template ID. An empty ID selects the
// default template. Custom templates shadow built-ins with the same ID.
func (r *Registry) New(id string) (Renderer, error) {
	r.mu.RLock()
	if id == "" {
		id = r.defaultID
	}
	e, ok := r.custom[id]
	if !ok {
		e, ok = r.builtin[id]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownTemplateError{ID: id}
	}
	return e.factory()
}

// List returns metadata for every registered template, sorted by ID.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool, len(r.builtin)+len(r.custom))
	infos := make([]Info, 0, len(r.builtin)+len(r.custom))
	for id, e := range r.custom {
		seen[id] = true
		infos = append(infos, e.info)
	}
	for id, e := range r.builtin {
		if seen[id] {
			continue
		}
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// SetDefault changes the default template. The ID must be registered.
func (r *Registry) SetDefault(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.custom[id]; !ok {
		if _, ok := r.builtin[id]; !ok {
			return &UnknownTemplateError{ID: id}
		}
	}
	r.defaultID = id
	return nil
}

// DefaultID returns the current default template ID.
func (r *Registry) DefaultID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultID
}
