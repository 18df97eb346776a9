package filters

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Mode describes what a filter does with the records it matches
type Mode int

// Filtering modes
const (
	ModeShow Mode = iota
	ModeHide
	ModeHighlight
	ModeWindow
)

var modeNames = map[Mode]string{
	ModeShow:      "show",
	ModeHide:      "hide",
	ModeHighlight: "highlight",
	ModeWindow:    "window",
}

// String returns the lowercase name of the mode
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a mode name back into a Mode
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for mode, modeName := range modeNames {
		if modeName == name {
			return mode, nil
		}
	}

	return ModeShow, fmt.Errorf("unknown filter mode %q", name)
}

// Filter is a single rule entry in a filter model.
//
// Filters are compared by identity: implementations must be pointer types so
// that two filters with equal fields remain distinct members of a model.
type Filter interface {
	ID() string
	Name() string
	Mode() Mode
	IsEnabled() bool
}

// ChildModelFilter is a filter that owns a private list of nested filters.
// The list is independent of the model the filter itself belongs to.
type ChildModelFilter interface {
	Filter
	Children() MutableFilterModel
}

// ToggleFilter is the plain filter implementation
type ToggleFilter struct {
	id      string
	name    string
	mode    Mode
	enabled bool
}

// NewFilter creates a filter with a fresh identity
func NewFilter(name string, mode Mode, enabled bool) *ToggleFilter {
	return &ToggleFilter{
		id:      uuid.NewString(),
		name:    name,
		mode:    mode,
		enabled: enabled,
	}
}

func (f *ToggleFilter) ID() string      { return f.id }
func (f *ToggleFilter) Name() string    { return f.name }
func (f *ToggleFilter) Mode() Mode      { return f.mode }
func (f *ToggleFilter) IsEnabled() bool { return f.enabled }

// WithEnabled returns a new filter with the same rule and the given state.
// The result is a different member; swap it in with Replace.
func (f *ToggleFilter) WithEnabled(enabled bool) *ToggleFilter {
	return NewFilter(f.name, f.mode, enabled)
}

func (f *ToggleFilter) String() string {
	return f.name
}

// WindowFilter is a ChildModelFilter that scopes its children to a window of records
type WindowFilter struct {
	ToggleFilter
	children MutableFilterModel
}

// NewChildModelFilter creates a window filter owning the given children
func NewChildModelFilter(name string, enabled bool, children ...Filter) *WindowFilter {
	return &WindowFilter{
		ToggleFilter: *NewFilter(name, ModeWindow, enabled),
		children:     NewModel(children...),
	}
}

// Children returns the private children list
func (f *WindowFilter) Children() MutableFilterModel {
	return f.children
}

// WithEnabled returns a new window filter sharing the children list of this one
func (f *WindowFilter) WithEnabled(enabled bool) *WindowFilter {
	return &WindowFilter{
		ToggleFilter: *f.ToggleFilter.WithEnabled(enabled),
		children:     f.children,
	}
}

// Toggle returns a copy of filter with the given enabled state, keeping its
// variant. Unknown implementations are returned unchanged.
func Toggle(filter Filter, enabled bool) Filter {
	switch f := filter.(type) {
	case *WindowFilter:
		return f.WithEnabled(enabled)
	case *ToggleFilter:
		return f.WithEnabled(enabled)
	default:
		return filter
	}
}

// Describe returns a short human readable label for logs
func Describe(filter Filter) string {
	if filter == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s(%s)", filter.Name(), shortID(filter.ID()))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
