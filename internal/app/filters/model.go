package filters

import (
	"fmt"
	"slices"

	"logview/internal/app/errors"
)

// FilterModel is an ordered, observable collection of filters
type FilterModel interface {
	// Filters returns a snapshot of the members in order
	Filters() []Filter
	// FindSubModel returns the sub-model bound to a member child-model filter, or nil
	FindSubModel(filter ChildModelFilter) FilterModel
	AddObserver(observer Observer)
	RemoveObserver(observer Observer)
}

// MutableFilterModel is a FilterModel that owns its list of filters.
//
// Every child-model filter in the list gets a live sub-model containing all
// filters that precede it. Sub-models are derived views and are kept up to
// date by the mutations below.
type MutableFilterModel interface {
	FilterModel
	// Add appends a filter. Adding a member again does nothing.
	Add(filter Filter)
	// Remove deletes a filter. Removing a filter that is not a member does nothing.
	Remove(filter Filter)
	// Replace substitutes newFilter for oldFilter at the same position
	Replace(oldFilter, newFilter Filter) error
	// InsertBefore puts filter in front of anchor, or at the end if anchor is
	// nil or not a member. A filter that is already a member is moved.
	// A nil filter is rejected.
	InsertBefore(filter, anchor Filter) error
}

// model is the owning list behind MutableFilterModel
type model struct {
	filters     []Filter
	subModels   map[ChildModelFilter]*subModel
	observers   subject
	dispatching bool
}

// NewModel creates a model with the given filters, skipping duplicates
func NewModel(filters ...Filter) MutableFilterModel {
	m := &model{
		subModels: make(map[ChildModelFilter]*subModel),
	}

	for _, f := range filters {
		m.Add(f)
	}

	return m
}

func (m *model) Filters() []Filter {
	return slices.Clone(m.filters)
}

func (m *model) FindSubModel(filter ChildModelFilter) FilterModel {
	if filter == nil {
		return nil
	}

	if s, ok := m.subModels[filter]; ok {
		return s
	}

	return nil
}

func (m *model) AddObserver(observer Observer) {
	m.observers.add(observer)
}

func (m *model) RemoveObserver(observer Observer) {
	m.observers.remove(observer)
}

func (m *model) Add(filter Filter) {
	m.checkNotDispatching()

	if filter == nil || m.indexOf(filter) >= 0 {
		return
	}

	m.insert(filter, len(m.filters), nil)
}

func (m *model) Remove(filter Filter) {
	m.checkNotDispatching()

	position := m.indexOf(filter)
	if position < 0 {
		return
	}

	m.filters = slices.Delete(m.filters, position, position+1)
	removed := m.unregisterSubModel(filter)

	m.dispatch(func() {
		m.observers.each(func(o Observer) { o.OnFilterRemoved(m, filter) })
		m.notifySubModelRemoved(removed)

		for i := position; i < len(m.filters); i++ {
			if s := m.subModelAt(i); s != nil {
				s.observers.each(func(o Observer) { o.OnFilterRemoved(s, filter) })
			}
		}
	})
}

func (m *model) Replace(oldFilter, newFilter Filter) error {
	m.checkNotDispatching()

	position := m.indexOf(oldFilter)
	if position < 0 {
		return fmt.Errorf("%w: %s", errors.ErrFilterNotInModel, Describe(oldFilter))
	}

	if oldFilter == newFilter {
		return nil
	}

	if newFilter == nil {
		return fmt.Errorf("%w: replacement for %s", errors.ErrNilFilter, Describe(oldFilter))
	}

	if m.indexOf(newFilter) >= 0 {
		return fmt.Errorf("%w: %s", errors.ErrFilterAlreadyInModel, Describe(newFilter))
	}

	m.filters[position] = newFilter
	removed := m.unregisterSubModel(oldFilter)
	created := m.registerSubModel(newFilter)

	m.dispatch(func() {
		m.observers.each(func(o Observer) { o.OnFilterReplaced(m, oldFilter, newFilter) })
		m.notifySubModelRemoved(removed)
		m.notifySubModelCreated(created)

		for i := position + 1; i < len(m.filters); i++ {
			if s := m.subModelAt(i); s != nil {
				s.observers.each(func(o Observer) { o.OnFilterReplaced(s, oldFilter, newFilter) })
			}
		}
	})

	return nil
}

func (m *model) InsertBefore(filter, anchor Filter) error {
	m.checkNotDispatching()

	if filter == nil {
		return fmt.Errorf("%w: insert before %s", errors.ErrNilFilter, Describe(anchor))
	}

	if filter == anchor {
		return fmt.Errorf("%w: %s", errors.ErrFilterAnchoredToItself, Describe(filter))
	}

	target := m.indexOf(anchor)
	if target < 0 {
		target = len(m.filters)
		anchor = nil
	}

	from := m.indexOf(filter)
	if from < 0 {
		m.insert(filter, target, anchor)
		return nil
	}

	m.move(filter, from, target)

	return nil
}

// insert puts a new member at index position; anchor is the member previously at that index
func (m *model) insert(filter Filter, position int, anchor Filter) {
	m.filters = slices.Insert(m.filters, position, filter)
	created := m.registerSubModel(filter)

	m.dispatch(func() {
		m.observers.each(func(o Observer) { o.OnFilterAdded(m, filter, anchor) })
		m.notifySubModelCreated(created)

		for i := position + 1; i < len(m.filters); i++ {
			s := m.subModelAt(i)
			if s == nil {
				continue
			}

			var before Filter
			if position+1 < i {
				before = anchor
			}

			s.observers.each(func(o Observer) { o.OnFilterAdded(s, filter, before) })
		}
	})
}

// move relocates the member at index from so that it ends up in front of the
// member at index target of the unmodified list.
func (m *model) move(filter Filter, from, target int) {
	to := target
	if target > from {
		to = target - 1
	}

	if to == from {
		return
	}

	previous := slices.Clone(m.filters)
	m.filters = slices.Delete(m.filters, from, from+1)
	m.filters = slices.Insert(m.filters, to, filter)

	m.dispatch(func() {
		m.observers.each(func(o Observer) { o.OnFilterMoved(m, filter) })

		for i := range m.filters {
			s := m.subModelAt(i)
			if s == nil {
				continue
			}

			if i == to {
				s.notifyBoundaryMoved(previous, from, target)
				continue
			}

			s.notifyMemberMoved(filter, from < previousIndex(i, from, to), to < i, m.filterAfter(to, i))
		}
	})
}

// previousIndex maps an index of a member other than the moved one back to
// its index before the move.
func previousIndex(i, from, to int) int {
	k := i
	if i > to {
		k = i - 1
	}

	if k >= from {
		k++
	}

	return k
}

// filterAfter returns the member following position, or nil if that is at or past end
func (m *model) filterAfter(position, end int) Filter {
	if position+1 < end {
		return m.filters[position+1]
	}

	return nil
}

func (m *model) indexOf(filter Filter) int {
	if filter == nil {
		return -1
	}

	for i, f := range m.filters {
		if f == filter {
			return i
		}
	}

	return -1
}

func (m *model) subModelAt(i int) *subModel {
	if c, ok := m.filters[i].(ChildModelFilter); ok {
		return m.subModels[c]
	}

	return nil
}

func (m *model) registerSubModel(filter Filter) *subModel {
	c, ok := filter.(ChildModelFilter)
	if !ok {
		return nil
	}

	s := newSubModel(m, c)
	m.subModels[c] = s

	return s
}

func (m *model) unregisterSubModel(filter Filter) *subModel {
	c, ok := filter.(ChildModelFilter)
	if !ok {
		return nil
	}

	s, ok := m.subModels[c]
	if !ok {
		return nil
	}

	delete(m.subModels, c)
	s.detach()

	return s
}

func (m *model) notifySubModelCreated(s *subModel) {
	if s == nil {
		return
	}

	m.observers.each(func(o Observer) { o.OnSubModelCreated(m, s, s.boundary) })
}

func (m *model) notifySubModelRemoved(s *subModel) {
	if s == nil {
		return
	}

	m.observers.each(func(o Observer) { o.OnSubModelRemoved(m, s, s.boundary) })
}

// dispatch runs fn with mutations locked out; observer panics propagate to the caller
func (m *model) dispatch(fn func()) {
	m.dispatching = true
	defer func() { m.dispatching = false }()

	fn()
}

func (m *model) checkNotDispatching() {
	if m.dispatching {
		panic("filters: model mutated from an observer callback")
	}
}
