package filters

// CompoundFilterModel presents the filters preceding a child-model filter
// followed by that filter's own children as one observable sequence.
//
// It is read-only: edit the owning model or the children list directly.
// Observers of the sources are attached while the compound itself has
// observers, so an unobserved compound holds no registrations.
type CompoundFilterModel struct {
	prefix    FilterModel
	filter    ChildModelFilter
	observers subject

	prefixForwarder   *prefixForwarder
	childrenForwarder *childrenForwarder
}

// NewCompoundFilterModel combines prefix, usually the sub-model of filter, with
// filter's children. A nil prefix is treated as empty.
func NewCompoundFilterModel(prefix FilterModel, filter ChildModelFilter) *CompoundFilterModel {
	c := &CompoundFilterModel{
		prefix: prefix,
		filter: filter,
	}

	c.prefixForwarder = &prefixForwarder{compound: c}
	c.childrenForwarder = &childrenForwarder{compound: c}

	return c
}

// Filter returns the child-model filter whose children make up the tail
func (c *CompoundFilterModel) Filter() ChildModelFilter {
	return c.filter
}

func (c *CompoundFilterModel) Filters() []Filter {
	children := c.filter.Children().Filters()
	if c.prefix == nil {
		return children
	}

	return append(c.prefix.Filters(), children...)
}

func (c *CompoundFilterModel) FindSubModel(filter ChildModelFilter) FilterModel {
	if c.prefix != nil {
		if sub := c.prefix.FindSubModel(filter); sub != nil {
			return sub
		}
	}

	return c.filter.Children().FindSubModel(filter)
}

func (c *CompoundFilterModel) AddObserver(observer Observer) {
	if observer == nil || c.observers.contains(observer) {
		return
	}

	if c.observers.empty() {
		c.attach()
	}

	c.observers.add(observer)
}

func (c *CompoundFilterModel) RemoveObserver(observer Observer) {
	if !c.observers.contains(observer) {
		return
	}

	c.observers.remove(observer)

	if c.observers.empty() {
		c.detach()
	}
}

func (c *CompoundFilterModel) attach() {
	if c.prefix != nil {
		c.prefix.AddObserver(c.prefixForwarder)
	}

	c.filter.Children().AddObserver(c.childrenForwarder)
}

func (c *CompoundFilterModel) detach() {
	if c.prefix != nil {
		c.prefix.RemoveObserver(c.prefixForwarder)
	}

	c.filter.Children().RemoveObserver(c.childrenForwarder)
}

// firstChild is where the prefix part ends inside the compound sequence
func (c *CompoundFilterModel) firstChild() Filter {
	children := c.filter.Children().Filters()
	if len(children) == 0 {
		return nil
	}

	return children[0]
}

// prefixForwarder re-emits events of the prefix model
type prefixForwarder struct {
	compound *CompoundFilterModel
}

func (p *prefixForwarder) OnFilterAdded(_ FilterModel, filter, before Filter) {
	c := p.compound
	if before == nil {
		before = c.firstChild()
	}

	c.observers.each(func(o Observer) { o.OnFilterAdded(c, filter, before) })
}

func (p *prefixForwarder) OnFilterRemoved(_ FilterModel, filter Filter) {
	c := p.compound
	c.observers.each(func(o Observer) { o.OnFilterRemoved(c, filter) })
}

func (p *prefixForwarder) OnFilterReplaced(_ FilterModel, oldFilter, newFilter Filter) {
	c := p.compound
	c.observers.each(func(o Observer) { o.OnFilterReplaced(c, oldFilter, newFilter) })
}

func (p *prefixForwarder) OnFilterMoved(_ FilterModel, filter Filter) {
	c := p.compound
	c.observers.each(func(o Observer) { o.OnFilterMoved(c, filter) })
}

func (p *prefixForwarder) OnSubModelCreated(_, subModel FilterModel, boundary ChildModelFilter) {
	c := p.compound
	c.observers.each(func(o Observer) { o.OnSubModelCreated(c, subModel, boundary) })
}

func (p *prefixForwarder) OnSubModelRemoved(_, subModel FilterModel, boundary ChildModelFilter) {
	c := p.compound
	c.observers.each(func(o Observer) { o.OnSubModelRemoved(c, subModel, boundary) })
}

// childrenForwarder re-emits events of the private children list. Anchors are
// filter identities, so they need no translation.
type childrenForwarder struct {
	compound *CompoundFilterModel
}

func (f *childrenForwarder) OnFilterAdded(_ FilterModel, filter, before Filter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnFilterAdded(c, filter, before) })
}

func (f *childrenForwarder) OnFilterRemoved(_ FilterModel, filter Filter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnFilterRemoved(c, filter) })
}

func (f *childrenForwarder) OnFilterReplaced(_ FilterModel, oldFilter, newFilter Filter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnFilterReplaced(c, oldFilter, newFilter) })
}

func (f *childrenForwarder) OnFilterMoved(_ FilterModel, filter Filter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnFilterMoved(c, filter) })
}

func (f *childrenForwarder) OnSubModelCreated(_, subModel FilterModel, boundary ChildModelFilter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnSubModelCreated(c, subModel, boundary) })
}

func (f *childrenForwarder) OnSubModelRemoved(_, subModel FilterModel, boundary ChildModelFilter) {
	c := f.compound
	c.observers.each(func(o Observer) { o.OnSubModelRemoved(c, subModel, boundary) })
}
