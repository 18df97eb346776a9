//go:generate mockgen -source=observer.go -destination=observer_mock.go -package=filters
package filters

// Observer receives structural changes of a single FilterModel.
//
// Callbacks run synchronously on the goroutine that mutated the model, after
// the mutation is complete. Observers may read any model from a callback but
// must not mutate one. Implementations must be comparable (pointer types) so
// that they can be removed again.
type Observer interface {
	// OnFilterAdded reports a new member. before is the member the new filter
	// now precedes, or nil if it was appended to the end of the model.
	OnFilterAdded(model FilterModel, filter, before Filter)
	// OnFilterRemoved reports a member that left the model
	OnFilterRemoved(model FilterModel, filter Filter)
	// OnFilterReplaced reports a member substituted in place
	OnFilterReplaced(model FilterModel, oldFilter, newFilter Filter)
	// OnFilterMoved reports a member that changed its position within the model
	OnFilterMoved(model FilterModel, filter Filter)
	// OnSubModelCreated reports a new sub-model bound to a child-model filter
	OnSubModelCreated(parent, subModel FilterModel, boundary ChildModelFilter)
	// OnSubModelRemoved reports a torn down sub-model. The sub-model must not be used afterwards.
	OnSubModelRemoved(parent, subModel FilterModel, boundary ChildModelFilter)
}

// NopObserver ignores all notifications. Embed it to implement only the callbacks you need.
type NopObserver struct{}

func (NopObserver) OnFilterAdded(FilterModel, Filter, Filter)                    {}
func (NopObserver) OnFilterRemoved(FilterModel, Filter)                          {}
func (NopObserver) OnFilterReplaced(FilterModel, Filter, Filter)                 {}
func (NopObserver) OnFilterMoved(FilterModel, Filter)                            {}
func (NopObserver) OnSubModelCreated(FilterModel, FilterModel, ChildModelFilter) {}
func (NopObserver) OnSubModelRemoved(FilterModel, FilterModel, ChildModelFilter) {}

// subject is an insertion-ordered set of observers owned by one model
type subject struct {
	observers []Observer
}

func (s *subject) add(observer Observer) {
	if observer == nil || s.contains(observer) {
		return
	}

	s.observers = append(s.observers, observer)
}

func (s *subject) remove(observer Observer) {
	for i, o := range s.observers {
		if o == observer {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *subject) contains(observer Observer) bool {
	for _, o := range s.observers {
		if o == observer {
			return true
		}
	}

	return false
}

func (s *subject) empty() bool {
	return len(s.observers) == 0
}

// each calls fn for every observer registered when the dispatch started
func (s *subject) each(fn func(Observer)) {
	if len(s.observers) == 0 {
		return
	}

	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)

	for _, o := range snapshot {
		fn(o)
	}
}
