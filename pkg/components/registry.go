package components

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownComponent is returned when a name has no registered descriptor.
var ErrUnknownComponent = errors.New("components: unknown component")

// Node is one component invocation in a data-driven page: the registered
// name, its props and optional child nodes rendered into the "children"
// prop.
type Node struct {
	Component string         `json:"component" yaml:"component"`
	Props     map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
	Children  []Node         `json:"children,omitempty" yaml:"children,omitempty"`
}

// RenderFunc renders a component from untyped props.
type RenderFunc func(buf *bytes.Buffer, props map[string]any, data ComponentData) error

// ComponentData carries what a RenderFunc needs beyond its props.
type ComponentData struct {
	Renderer    *Renderer
	RenderChild func(node Node) (Markup, error)
}

// Script describes JavaScript a component needs emitted once per page.
type Script struct {
	Src    string
	Type   string
	Inline string
	Async  bool
	Defer  bool
	Module bool
	Attrs  map[string]string
}

// Descriptor bundles a renderer with its asset dependencies.
type Descriptor struct {
	Name        string
	Renderer    RenderFunc
	Stylesheets []string
	Scripts     []Script
}

// Registry tracks component descriptors keyed by name. Callers can register
// new components or override the defaults.
type Registry struct {
	mu         sync.RWMutex
	components map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		components: make(map[string]Descriptor),
	}
}

// Clone returns a deep copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.components {
		cloned.components[name] = cloneDescriptor(descriptor)
	}
	return cloned
}

// Register associates a descriptor with name. Existing entries are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("components: component name is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("components: renderer for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.components[name] = cloneDescriptor(descriptor)
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.components[normalize(name)]
	if !ok {
		return Descriptor{}, false
	}
	return cloneDescriptor(descriptor), true
}

// Names returns the sorted registered names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.components))
	for name := range r.components {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Assets resolves the de-duplicated stylesheets and scripts of names, in
// first-seen order.
func (r *Registry) Assets(names []string) (stylesheets []string, scripts []Script) {
	if len(names) == 0 {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	seenStyles := make(map[string]struct{})
	seenScripts := make(map[string]struct{})

	for _, name := range names {
		descriptor, ok := r.components[normalize(name)]
		if !ok {
			continue
		}
		for _, href := range descriptor.Stylesheets {
			if href == "" {
				continue
			}
			if _, exists := seenStyles[href]; exists {
				continue
			}
			seenStyles[href] = struct{}{}
			stylesheets = append(stylesheets, href)
		}
		for _, script := range descriptor.Scripts {
			key := scriptKey(script)
			if _, exists := seenScripts[key]; exists {
				continue
			}
			seenScripts[key] = struct{}{}
			scripts = append(scripts, script)
		}
	}
	return stylesheets, scripts
}

// Render renders node and its children with renderer.
func (r *Registry) Render(buf *bytes.Buffer, renderer *Renderer, node Node) error {
	descriptor, ok := r.Descriptor(node.Component)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, node.Component)
	}
	if renderer == nil {
		renderer = NewRenderer()
	}
	data := ComponentData{
		Renderer: renderer,
		RenderChild: func(child Node) (Markup, error) {
			var childBuf bytes.Buffer
			if err := r.Render(&childBuf, renderer, child); err != nil {
				return "", err
			}
			return Markup(childBuf.String()), nil
		},
	}

	props := node.Props
	if len(node.Children) > 0 {
		var children strings.Builder
		for _, child := range node.Children {
			markup, err := data.RenderChild(child)
			if err != nil {
				return fmt.Errorf("components: %s: %w", descriptor.Name, err)
			}
			children.WriteString(string(markup))
		}
		props = make(map[string]any, len(node.Props)+1)
		for key, value := range node.Props {
			props[key] = value
		}
		props["children"] = children.String()
	}
	return descriptor.Renderer(buf, props, data)
}

// Collect returns the component names used by node and its descendants, in
// first-seen order, for asset resolution.
func Collect(node Node) []string {
	var names []string
	seen := make(map[string]struct{})
	var walk func(Node)
	walk = func(n Node) {
		name := normalize(n.Component)
		if _, ok := seen[name]; !ok && name != "" {
			seen[name] = struct{}{}
			names = append(names, name)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(node)
	return names
}

// Typed adapts a typed render method into a RenderFunc. Props are decoded
// into P through JSON; nested nodes found under a prop (a map carrying a
// "component" key, or a list of them) are rendered first and substituted
// as markup.
func Typed[P any](render func(*Renderer, *bytes.Buffer, P) error) RenderFunc {
	return func(buf *bytes.Buffer, props map[string]any, data ComponentData) error {
		expanded, err := expandNodes(props, data)
		if err != nil {
			return err
		}
		var p P
		if err := DecodeProps(expanded, &p); err != nil {
			return err
		}
		renderer := data.Renderer
		if renderer == nil {
			renderer = NewRenderer()
		}
		return render(renderer, buf, p)
	}
}

// DecodeProps decodes untyped props into target, a pointer to a props
// struct.
func DecodeProps(props map[string]any, target any) error {
	if len(props) == 0 {
		return nil
	}
	raw, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("components: encode props: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("components: decode props: %w", err)
	}
	return nil
}

func expandNodes(props map[string]any, data ComponentData) (map[string]any, error) {
	out, _, err := expandMap(props, data)
	return out, err
}

// expandMap reports whether any value was replaced; props itself is never
// mutated.
func expandMap(props map[string]any, data ComponentData) (map[string]any, bool, error) {
	if len(props) == 0 || data.RenderChild == nil {
		return props, false, nil
	}
	var out map[string]any
	for key, value := range props {
		markup, ok, err := renderNodeValue(value, data)
		if err != nil {
			return nil, false, fmt.Errorf("components: prop %q: %w", key, err)
		}
		var replacement any = string(markup)
		if !ok {
			items, changed, err := expandItems(value, data)
			if err != nil {
				return nil, false, fmt.Errorf("components: prop %q: %w", key, err)
			}
			if !changed {
				continue
			}
			replacement = items
		}
		if out == nil {
			out = make(map[string]any, len(props))
			for k, v := range props {
				out[k] = v
			}
		}
		out[key] = replacement
	}
	if out == nil {
		return props, false, nil
	}
	return out, true, nil
}

func renderNodeValue(value any, data ComponentData) (Markup, bool, error) {
	switch typed := value.(type) {
	case map[string]any:
		node, ok := nodeFromMap(typed)
		if !ok {
			return "", false, nil
		}
		markup, err := data.RenderChild(node)
		return markup, true, err
	case []any:
		if len(typed) == 0 {
			return "", false, nil
		}
		var buf strings.Builder
		for _, item := range typed {
			m, ok := item.(map[string]any)
			if !ok {
				return "", false, nil
			}
			node, ok := nodeFromMap(m)
			if !ok {
				return "", false, nil
			}
			markup, err := data.RenderChild(node)
			if err != nil {
				return "", true, err
			}
			buf.WriteString(string(markup))
		}
		return Markup(buf.String()), true, nil
	}
	return "", false, nil
}

// expandItems expands nested nodes inside a list of plain maps, such as
// accordion items whose content is a node.
func expandItems(value any, data ComponentData) ([]any, bool, error) {
	list, ok := value.([]any)
	if !ok {
		return nil, false, nil
	}
	var out []any
	for idx, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		expanded, changed, err := expandMap(m, data)
		if err != nil {
			return nil, false, fmt.Errorf("item %d: %w", idx, err)
		}
		if !changed {
			continue
		}
		if out == nil {
			out = slices.Clone(list)
		}
		out[idx] = expanded
	}
	return out, out != nil, nil
}

func nodeFromMap(m map[string]any) (Node, bool) {
	name, ok := m["component"].(string)
	if !ok || strings.TrimSpace(name) == "" {
		return Node{}, false
	}
	var node Node
	if err := DecodeProps(m, &node); err != nil {
		return Node{}, false
	}
	return node, true
}

func cloneDescriptor(src Descriptor) Descriptor {
	clone := Descriptor{
		Name:        src.Name,
		Renderer:    src.Renderer,
		Stylesheets: slices.Clone(src.Stylesheets),
		Scripts:     make([]Script, len(src.Scripts)),
	}
	for idx, script := range src.Scripts {
		script.Attrs = cloneStringMap(script.Attrs)
		clone.Scripts[idx] = script
	}
	return clone
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

func scriptKey(script Script) string {
	if script.Src != "" {
		return "src:" + script.Src
	}
	return "inline:" + script.Inline
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
