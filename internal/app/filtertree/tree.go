package filtertree

import (
	"slices"

	"logview/internal/app/filters"
	"logview/internal/config/logger"
)

// MaxDepth bounds the nesting of expanded child-model filters
const MaxDepth = 16

// Node is one displayed filter. Child-model filters carry the level of their nested list.
type Node struct {
	filter filters.Filter
	nested *Level
}

// Filter returns the filter shown by this node
func (n *Node) Filter() filters.Filter {
	return n.filter
}

// Nested returns the expanded level of a child-model filter, or nil
func (n *Node) Nested() *Level {
	return n.nested
}

// Level mirrors one filter model, updated from its events only
type Level struct {
	model    filters.FilterModel
	compound *filters.CompoundFilterModel
	nodes    []*Node
	depth    int
	log      logger.Logger
}

func newLevel(model filters.FilterModel, compound *filters.CompoundFilterModel, depth int, log logger.Logger) *Level {
	l := &Level{
		model:    model,
		compound: compound,
		depth:    depth,
		log:      log,
	}

	for _, f := range model.Filters() {
		l.nodes = append(l.nodes, l.newNode(f))
	}

	model.AddObserver(l)

	return l
}

// Nodes returns the displayed nodes in order
func (l *Level) Nodes() []*Node {
	return slices.Clone(l.nodes)
}

// Filters returns the mirrored filters in order
func (l *Level) Filters() []filters.Filter {
	result := make([]filters.Filter, 0, len(l.nodes))
	for _, n := range l.nodes {
		result = append(result, n.filter)
	}

	return result
}

// Owner returns the child-model filter whose list this level shows, or nil for the root level
func (l *Level) Owner() filters.ChildModelFilter {
	if l.compound == nil {
		return nil
	}

	return l.compound.Filter()
}

// inherited reports whether filter comes from the prefix rather than the owner's own children
func (l *Level) inherited(filter filters.Filter) bool {
	if l.compound == nil {
		return false
	}

	return !slices.Contains(l.compound.Filter().Children().Filters(), filter)
}

func (l *Level) newNode(filter filters.Filter) *Node {
	n := &Node{filter: filter}

	c, ok := filter.(filters.ChildModelFilter)
	if !ok {
		return n
	}

	if l.depth >= MaxDepth {
		l.log.Warn().Str("filter", filters.Describe(filter)).Int("depth", l.depth).Msg("Nesting too deep, level not expanded")
		return n
	}

	compound := filters.NewCompoundFilterModel(l.model.FindSubModel(c), c)
	n.nested = newLevel(compound, compound, l.depth+1, l.log)

	l.log.Debug().Str("filter", filters.Describe(filter)).Int("depth", l.depth+1).Msg("Level expanded")

	return n
}

func (l *Level) indexOf(filter filters.Filter) int {
	if filter == nil {
		return -1
	}

	return slices.IndexFunc(l.nodes, func(n *Node) bool { return n.filter == filter })
}

func (l *Level) insertBefore(n *Node, before filters.Filter) {
	position := l.indexOf(before)
	if position < 0 {
		l.nodes = append(l.nodes, n)
		return
	}

	l.nodes = slices.Insert(l.nodes, position, n)
}

func (l *Level) close() {
	l.model.RemoveObserver(l)

	for _, n := range l.nodes {
		if n.nested != nil {
			n.nested.close()
		}
	}

	l.nodes = nil
}

func (l *Level) OnFilterAdded(_ filters.FilterModel, filter, before filters.Filter) {
	l.insertBefore(l.newNode(filter), before)
}

func (l *Level) OnFilterRemoved(_ filters.FilterModel, filter filters.Filter) {
	position := l.indexOf(filter)
	if position < 0 {
		l.log.Warn().Str("filter", filters.Describe(filter)).Msg("Removed filter is not mirrored")
		return
	}

	if nested := l.nodes[position].nested; nested != nil {
		nested.close()
	}

	l.nodes = slices.Delete(l.nodes, position, position+1)
}

func (l *Level) OnFilterReplaced(_ filters.FilterModel, oldFilter, newFilter filters.Filter) {
	position := l.indexOf(oldFilter)
	if position < 0 {
		l.log.Warn().Str("filter", filters.Describe(oldFilter)).Msg("Replaced filter is not mirrored")
		return
	}

	if nested := l.nodes[position].nested; nested != nil {
		nested.close()
	}

	l.nodes[position] = l.newNode(newFilter)
}

// OnFilterMoved reads the model once to find the member the filter now precedes
func (l *Level) OnFilterMoved(model filters.FilterModel, filter filters.Filter) {
	position := l.indexOf(filter)
	if position < 0 {
		l.log.Warn().Str("filter", filters.Describe(filter)).Msg("Moved filter is not mirrored")
		return
	}

	n := l.nodes[position]
	l.nodes = slices.Delete(l.nodes, position, position+1)

	current := model.Filters()

	var next filters.Filter
	if i := slices.Index(current, filter); i >= 0 && i+1 < len(current) {
		next = current[i+1]
	}

	l.insertBefore(n, next)
}

func (l *Level) OnSubModelCreated(_, _ filters.FilterModel, _ filters.ChildModelFilter) {}
func (l *Level) OnSubModelRemoved(_, _ filters.FilterModel, _ filters.ChildModelFilter) {}

// Tree mirrors a filter model and the lists of its child-model filters
type Tree struct {
	root  *Level
	index *filters.ModeIndex
	log   logger.Logger
}

// New starts mirroring model. Call Close to detach.
func New(model filters.FilterModel, log logger.Logger) *Tree {
	return &Tree{
		root:  newLevel(model, nil, 0, log),
		index: filters.NewModeIndex(model),
		log:   log,
	}
}

// Root returns the level of the mirrored model
func (t *Tree) Root() *Level {
	return t.root
}

// Close detaches every level from its model
func (t *Tree) Close() {
	if t.root == nil {
		return
	}

	t.root.close()
	t.root = nil

	t.index.Close()
	t.index = nil

	t.log.Debug().Msg("Tree closed")
}
