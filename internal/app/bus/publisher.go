package bus

import (
	"logview/internal/app/filters"
)

// Publisher turns the events of a filter model into bus messages. It follows
// the sub-models of the model it is attached to and, for lists it owns, the
// children lists of their boundaries.
type Publisher struct {
	bus      Bus
	label    string
	owning   bool
	model    filters.FilterModel
	followed map[filters.ChildModelFilter][]*Publisher
}

// NewPublisher creates a publisher for an owning list labelled label. Sub-models
// are published as label/boundary and children lists as label/boundary:children.
func NewPublisher(b Bus, label string) *Publisher {
	return newPublisher(b, label, true)
}

func newPublisher(b Bus, label string, owning bool) *Publisher {
	return &Publisher{
		bus:      b,
		label:    label,
		owning:   owning,
		followed: make(map[filters.ChildModelFilter][]*Publisher),
	}
}

// Attach starts publishing the events of model. Sub-models already present are
// followed without publishing their creation.
func (p *Publisher) Attach(model filters.FilterModel) {
	p.model = model
	model.AddObserver(p)

	for _, f := range model.Filters() {
		boundary, ok := f.(filters.ChildModelFilter)
		if !ok {
			continue
		}

		if subModel := model.FindSubModel(boundary); subModel != nil {
			p.follow(subModel, boundary)
		}
	}
}

// Close detaches the publisher and every publisher it attached
func (p *Publisher) Close() {
	if p.model == nil {
		return
	}

	p.model.RemoveObserver(p)
	p.model = nil

	for boundary := range p.followed {
		p.unfollow(boundary)
	}
}

func (p *Publisher) follow(subModel filters.FilterModel, boundary filters.ChildModelFilter) {
	sub := newPublisher(p.bus, SubModelLabel(p.label, boundary), false)
	sub.Attach(subModel)

	followed := []*Publisher{sub}

	if p.owning {
		children := newPublisher(p.bus, ChildrenLabel(p.label, boundary), true)
		children.Attach(boundary.Children())

		followed = append(followed, children)
	}

	p.followed[boundary] = followed
}

func (p *Publisher) unfollow(boundary filters.ChildModelFilter) {
	for _, child := range p.followed[boundary] {
		child.Close()
	}

	delete(p.followed, boundary)
}

// Ref converts a filter into its message form; nil becomes the zero FilterRef
func Ref(filter filters.Filter) FilterRef {
	if filter == nil {
		return FilterRef{}
	}

	return FilterRef{
		ID:      filter.ID(),
		Name:    filter.Name(),
		Mode:    filter.Mode().String(),
		Enabled: filter.IsEnabled(),
	}
}

// SubModelLabel names the sub-model of boundary inside the model labelled parent
func SubModelLabel(parent string, boundary filters.ChildModelFilter) string {
	return parent + "/" + boundary.Name()
}

// ChildrenLabel names the children list of boundary inside the model labelled parent
func ChildrenLabel(parent string, boundary filters.ChildModelFilter) string {
	return SubModelLabel(parent, boundary) + ":children"
}

func (p *Publisher) event() ModelEvent {
	return ModelEvent{Model: p.label}
}

func (p *Publisher) OnFilterAdded(_ filters.FilterModel, filter, before filters.Filter) {
	p.bus.Publish(Message{
		Type: EventFilterAdded,
		Data: FilterAdded{ModelEvent: p.event(), Filter: Ref(filter), Before: Ref(before)},
	})
}

func (p *Publisher) OnFilterRemoved(_ filters.FilterModel, filter filters.Filter) {
	p.bus.Publish(Message{
		Type: EventFilterRemoved,
		Data: FilterRemoved{ModelEvent: p.event(), Filter: Ref(filter)},
	})
}

func (p *Publisher) OnFilterReplaced(_ filters.FilterModel, oldFilter, newFilter filters.Filter) {
	p.bus.Publish(Message{
		Type: EventFilterReplaced,
		Data: FilterReplaced{ModelEvent: p.event(), Old: Ref(oldFilter), New: Ref(newFilter)},
	})
}

func (p *Publisher) OnFilterMoved(_ filters.FilterModel, filter filters.Filter) {
	p.bus.Publish(Message{
		Type: EventFilterMoved,
		Data: FilterMoved{ModelEvent: p.event(), Filter: Ref(filter)},
	})
}

func (p *Publisher) OnSubModelCreated(_, subModel filters.FilterModel, boundary filters.ChildModelFilter) {
	p.bus.Publish(Message{
		Type:     EventSubModelCreated,
		Data:     SubModelChanged{ModelEvent: p.event(), SubModel: SubModelLabel(p.label, boundary), Boundary: Ref(boundary)},
		Critical: true,
	})

	p.follow(subModel, boundary)
}

func (p *Publisher) OnSubModelRemoved(_, _ filters.FilterModel, boundary filters.ChildModelFilter) {
	p.unfollow(boundary)

	p.bus.Publish(Message{
		Type:     EventSubModelRemoved,
		Data:     SubModelChanged{ModelEvent: p.event(), SubModel: SubModelLabel(p.label, boundary), Boundary: Ref(boundary)},
		Critical: true,
	})
}
