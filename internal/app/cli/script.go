package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"

	"logview/internal/app/errors"
	"logview/internal/app/filters"
)

// Script operations
const (
	OpAdd         = "add"
	OpRemove      = "remove"
	OpReplace     = "replace"
	OpInsert      = "insert"
	OpToggle      = "toggle"
	OpChildAdd    = "child-add"
	OpChildRemove = "child-remove"
)

// FilterSpec declares a named filter. Filters in window mode own a children list.
type FilterSpec struct {
	Name     string   `yaml:"name"`
	Mode     string   `yaml:"mode"`
	Enabled  *bool    `yaml:"enabled"`
	Children []string `yaml:"children"`
}

// Step is one edit of a filter model. Parent selects the children list of a
// window filter instead of the root model.
type Step struct {
	Op     string `yaml:"op"`
	Filter string `yaml:"filter"`
	Before string `yaml:"before"`
	With   string `yaml:"with"`
	Parent string `yaml:"parent"`
}

// Script is a replayable list of filter declarations and edits
type Script struct {
	Filters []FilterSpec `yaml:"filters"`
	Steps   []Step       `yaml:"steps"`
}

// LoadScript reads and parses a script file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadScript, err)
	}

	return ParseScript(data)
}

// ParseScript parses a script, rejecting unknown fields
func ParseScript(data []byte) (*Script, error) {
	var script Script

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToParseScript, err)
	}

	return &script, nil
}

// replay holds the current instance behind every declared name and the list
// each name was put into. A filter belongs to one list at a time.
type replay struct {
	root  filters.MutableFilterModel
	named map[string]filters.Filter
	owner map[string]filters.MutableFilterModel
}

// Run declares the script filters and applies its steps to root in order.
// It stops at the first failing step.
func (s *Script) Run(root filters.MutableFilterModel) error {
	r := &replay{
		root:  root,
		named: make(map[string]filters.Filter),
		owner: make(map[string]filters.MutableFilterModel),
	}

	if err := r.declare(s.Filters); err != nil {
		return err
	}

	for i, step := range s.Steps {
		if err := r.apply(step); err != nil {
			return fmt.Errorf("step %d (%s %s): %w", i+1, step.Op, step.Filter, err)
		}
	}

	return nil
}

// declare creates plain filters first. Windows may list any plain filter and earlier windows as children.
func (r *replay) declare(specs []FilterSpec) error {
	for _, spec := range specs {
		if _, ok := r.named[spec.Name]; ok {
			return fmt.Errorf("%w: %s", errors.ErrDuplicateFilter, spec.Name)
		}

		mode, err := parseMode(spec.Mode)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", errors.ErrFailedToParseScript, spec.Name, err)
		}

		if mode == filters.ModeWindow {
			r.named[spec.Name] = nil
			continue
		}

		r.named[spec.Name] = filters.NewFilter(spec.Name, mode, enabled(spec))
	}

	for _, spec := range specs {
		if r.named[spec.Name] != nil {
			continue
		}

		children := make([]filters.Filter, 0, len(spec.Children))

		for _, name := range spec.Children {
			child, err := r.lookup(name)
			if err != nil {
				return fmt.Errorf("children of %s: %w", spec.Name, err)
			}

			if _, ok := r.owner[name]; ok {
				return fmt.Errorf("children of %s: %w: %s is in another list", spec.Name, errors.ErrFilterAlreadyInModel, name)
			}

			children = append(children, child)
		}

		window := filters.NewChildModelFilter(spec.Name, enabled(spec), children...)
		r.named[spec.Name] = window

		for _, name := range spec.Children {
			r.owner[name] = window.Children()
		}
	}

	return nil
}

// parseMode defaults an omitted mode to show
func parseMode(name string) (filters.Mode, error) {
	if name == "" {
		return filters.ModeShow, nil
	}

	return filters.ParseMode(name)
}

func enabled(spec FilterSpec) bool {
	return spec.Enabled == nil || *spec.Enabled
}

func (r *replay) lookup(name string) (filters.Filter, error) {
	f, ok := r.named[name]
	if !ok || f == nil {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownFilter, name)
	}

	return f, nil
}

// lookupOptional resolves an empty name to nil
func (r *replay) lookupOptional(name string) (filters.Filter, error) {
	if name == "" {
		return nil, nil
	}

	return r.lookup(name)
}

// claimable fails when name sits in a list other than model
func (r *replay) claimable(name string, model filters.MutableFilterModel) error {
	if owner, ok := r.owner[name]; ok && owner != model {
		return fmt.Errorf("%w: %s is in another list", errors.ErrFilterAlreadyInModel, name)
	}

	return nil
}

// release forgets that name sits in model
func (r *replay) release(name string, model filters.MutableFilterModel) {
	if r.owner[name] == model {
		delete(r.owner, name)
	}
}

// target returns the model a step edits
func (r *replay) target(parent string) (filters.MutableFilterModel, error) {
	if parent == "" {
		return r.root, nil
	}

	f, err := r.lookup(parent)
	if err != nil {
		return nil, err
	}

	c, ok := f.(filters.ChildModelFilter)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotChildModelFilter, parent)
	}

	return c.Children(), nil
}

func (r *replay) apply(step Step) error {
	if step.Op == OpChildAdd || step.Op == OpChildRemove {
		if step.Parent == "" {
			return fmt.Errorf("%w: %s needs a parent", errors.ErrNotChildModelFilter, step.Op)
		}
	}

	model, err := r.target(step.Parent)
	if err != nil {
		return err
	}

	filter, err := r.lookup(step.Filter)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpAdd, OpChildAdd:
		if err := r.claimable(step.Filter, model); err != nil {
			return err
		}

		model.Add(filter)
		r.owner[step.Filter] = model
	case OpRemove, OpChildRemove:
		model.Remove(filter)
		r.release(step.Filter, model)
	case OpInsert:
		anchor, err := r.lookupOptional(step.Before)
		if err != nil {
			return err
		}

		if err := r.claimable(step.Filter, model); err != nil {
			return err
		}

		if err := model.InsertBefore(filter, anchor); err != nil {
			return err
		}

		r.owner[step.Filter] = model
	case OpReplace:
		replacement, err := r.lookup(step.With)
		if err != nil {
			return err
		}

		if err := r.claimable(step.With, model); err != nil {
			return err
		}

		if err := model.Replace(filter, replacement); err != nil {
			return err
		}

		r.release(step.Filter, model)
		r.owner[step.With] = model
	case OpToggle:
		toggled := filters.Toggle(filter, !filter.IsEnabled())
		if err := model.Replace(filter, toggled); err != nil {
			return err
		}

		r.named[step.Filter] = toggled
	default:
		return fmt.Errorf("%w: %q", errors.ErrUnknownOperation, step.Op)
	}

	return nil
}
