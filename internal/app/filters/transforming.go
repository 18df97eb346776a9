package filters

// TransformedHandler receives notifications about filters a TransformingObserver is interested in
type TransformedHandler[T any] interface {
	// Added is called when a matching filter is added, or a non-matching one is replaced with a matching one
	Added(model FilterModel, value T)
	// Removed is called when a matching filter is removed, or replaced with a non-matching one
	Removed(model FilterModel, value T)
	// Replaced is called when a matching filter is replaced with a matching one
	Replaced(model FilterModel, oldValue, newValue T)
	// Moved is called when a matching filter changes its position
	Moved(model FilterModel, value T)
}

// TransformingObserver projects filters through a function and forwards only
// the ones the function accepts. Sub-model events are ignored.
type TransformingObserver[T any] struct {
	NopObserver
	transform func(Filter) (T, bool)
	handler   TransformedHandler[T]
}

// NewTransformingObserver creates an observer; transform returns false for filters the handler should not see
func NewTransformingObserver[T any](transform func(Filter) (T, bool), handler TransformedHandler[T]) *TransformingObserver[T] {
	return &TransformingObserver[T]{
		transform: transform,
		handler:   handler,
	}
}

func (t *TransformingObserver[T]) OnFilterAdded(model FilterModel, filter, _ Filter) {
	if value, ok := t.transform(filter); ok {
		t.handler.Added(model, value)
	}
}

func (t *TransformingObserver[T]) OnFilterRemoved(model FilterModel, filter Filter) {
	if value, ok := t.transform(filter); ok {
		t.handler.Removed(model, value)
	}
}

func (t *TransformingObserver[T]) OnFilterReplaced(model FilterModel, oldFilter, newFilter Filter) {
	oldValue, oldOK := t.transform(oldFilter)
	newValue, newOK := t.transform(newFilter)

	switch {
	case oldOK && newOK:
		t.handler.Replaced(model, oldValue, newValue)
	case oldOK:
		t.handler.Removed(model, oldValue)
	case newOK:
		t.handler.Added(model, newValue)
	}
}

func (t *TransformingObserver[T]) OnFilterMoved(model FilterModel, filter Filter) {
	if value, ok := t.transform(filter); ok {
		t.handler.Moved(model, value)
	}
}
