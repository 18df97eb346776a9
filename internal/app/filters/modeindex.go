package filters

import "slices"

// ModeIndex keeps the enabled filters of a model grouped by mode, in model order
type ModeIndex struct {
	model    FilterModel
	byMode   map[Mode][]Filter
	observer *TransformingObserver[Filter]
}

// NewModeIndex indexes model and follows its changes until Close is called
func NewModeIndex(model FilterModel) *ModeIndex {
	x := &ModeIndex{
		model:  model,
		byMode: make(map[Mode][]Filter),
	}

	for mode := range modeNames {
		x.refresh(mode)
	}

	x.observer = NewTransformingObserver[Filter](enabledOnly, x)
	model.AddObserver(x.observer)

	return x
}

func enabledOnly(filter Filter) (Filter, bool) {
	return filter, filter.IsEnabled()
}

// Filters returns the enabled filters with the given mode
func (x *ModeIndex) Filters(mode Mode) []Filter {
	return slices.Clone(x.byMode[mode])
}

// Close stops following the model
func (x *ModeIndex) Close() {
	x.model.RemoveObserver(x.observer)
}

func (x *ModeIndex) Added(_ FilterModel, filter Filter) {
	x.refresh(filter.Mode())
}

func (x *ModeIndex) Removed(_ FilterModel, filter Filter) {
	x.refresh(filter.Mode())
}

func (x *ModeIndex) Replaced(_ FilterModel, oldFilter, newFilter Filter) {
	x.refresh(oldFilter.Mode())

	if newFilter.Mode() != oldFilter.Mode() {
		x.refresh(newFilter.Mode())
	}
}

func (x *ModeIndex) Moved(_ FilterModel, filter Filter) {
	x.refresh(filter.Mode())
}

func (x *ModeIndex) refresh(mode Mode) {
	var filters []Filter

	for _, f := range x.model.Filters() {
		if f.Mode() == mode && f.IsEnabled() {
			filters = append(filters, f)
		}
	}

	x.byMode[mode] = filters
}
