package filters

import "slices"

// subModel is the read-only view of the owner's members preceding a boundary filter
type subModel struct {
	owner     *model
	boundary  ChildModelFilter
	observers subject
	detached  bool
}

func newSubModel(owner *model, boundary ChildModelFilter) *subModel {
	return &subModel{
		owner:    owner,
		boundary: boundary,
	}
}

// Filters returns the owner's members up to, but excluding, the boundary
func (s *subModel) Filters() []Filter {
	end := s.end()
	if end < 0 {
		return nil
	}

	return slices.Clone(s.owner.filters[:end])
}

// FindSubModel only resolves child-model filters inside this view
func (s *subModel) FindSubModel(filter ChildModelFilter) FilterModel {
	end := s.end()
	if end < 0 {
		return nil
	}

	position := s.owner.indexOf(filter)
	if position < 0 || position >= end {
		return nil
	}

	return s.owner.FindSubModel(filter)
}

func (s *subModel) AddObserver(observer Observer) {
	s.observers.add(observer)
}

func (s *subModel) RemoveObserver(observer Observer) {
	s.observers.remove(observer)
}

// Boundary returns the child-model filter this view is bound to
func (s *subModel) Boundary() ChildModelFilter {
	return s.boundary
}

func (s *subModel) String() string {
	return "submodel of " + Describe(s.boundary)
}

// end is the boundary index in the owner list, or -1 once the view is detached
func (s *subModel) end() int {
	if s.detached {
		return -1
	}

	return s.owner.indexOf(s.boundary)
}

func (s *subModel) detach() {
	s.detached = true
}

// notifyMemberMoved reports a move of some other filter that may have crossed the boundary
func (s *subModel) notifyMemberMoved(filter Filter, wasMember, isMember bool, before Filter) {
	switch {
	case wasMember && isMember:
		s.observers.each(func(o Observer) { o.OnFilterMoved(s, filter) })
	case wasMember:
		s.observers.each(func(o Observer) { o.OnFilterRemoved(s, filter) })
	case isMember:
		s.observers.each(func(o Observer) { o.OnFilterAdded(s, filter, before) })
	}
}

// notifyBoundaryMoved reports the filters the boundary moved over. previous is
// the owner list before the move, from the old boundary index and target the
// index it was inserted in front of.
func (s *subModel) notifyBoundaryMoved(previous []Filter, from, target int) {
	if target > from {
		for _, f := range previous[from+1 : target] {
			s.observers.each(func(o Observer) { o.OnFilterAdded(s, f, nil) })
		}

		return
	}

	for _, f := range previous[target:from] {
		s.observers.each(func(o Observer) { o.OnFilterRemoved(s, f) })
	}
}
