package filtertree

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logview/internal/app/filters"
	"logview/internal/config/logger"
)

func newTree(t *testing.T, model filters.FilterModel) *Tree {
	t.Helper()

	tree := New(model, logger.Nop())
	t.Cleanup(tree.Close)

	return tree
}

// assertMirrors checks every level against the model it follows
func assertMirrors(t *testing.T, l *Level, msg string) {
	t.Helper()

	expected := l.model.Filters()
	actual := l.Filters()

	if len(expected) != 0 || len(actual) != 0 {
		require.Equal(t, expected, actual, msg)
	}

	for _, n := range l.nodes {
		if _, ok := n.filter.(filters.ChildModelFilter); ok && l.depth < MaxDepth {
			require.NotNil(t, n.nested, msg)
		}

		if n.nested != nil {
			assertMirrors(t, n.nested, msg)
		}
	}
}

func Test_New_MirrorsExistingModel(t *testing.T) {
	f1 := filters.NewFilter("f1", filters.ModeShow, true)
	c1 := filters.NewFilter("c1", filters.ModeHide, true)
	window := filters.NewChildModelFilter("window", true, c1)
	f2 := filters.NewFilter("f2", filters.ModeHighlight, true)

	tree := newTree(t, filters.NewModel(f1, window, f2))

	root := tree.Root()
	assert.Equal(t, []filters.Filter{f1, window, f2}, root.Filters())
	assert.Nil(t, root.Owner())

	nested := root.Nodes()[1].Nested()
	require.NotNil(t, nested)
	assert.Equal(t, []filters.Filter{f1, c1}, nested.Filters())
	assert.Same(t, window, nested.Owner())
	assert.Nil(t, root.Nodes()[0].Nested())
}

func Test_Tree_FollowsRootChanges(t *testing.T) {
	f1 := filters.NewFilter("f1", filters.ModeShow, true)
	f2 := filters.NewFilter("f2", filters.ModeShow, true)
	f3 := filters.NewFilter("f3", filters.ModeHide, true)
	window := filters.NewChildModelFilter("window", true)
	m := filters.NewModel(f1, f2)

	tree := newTree(t, m)

	m.Add(window)
	m.Add(f3)
	require.NoError(t, m.InsertBefore(window, f2))
	assertMirrors(t, tree.Root(), "window moved backwards")

	require.NoError(t, m.InsertBefore(window, nil))
	assertMirrors(t, tree.Root(), "window moved to the end")

	replacement := filters.NewFilter("replacement", filters.ModeHighlight, true)
	require.NoError(t, m.Replace(f2, replacement))
	assertMirrors(t, tree.Root(), "replaced")

	m.Remove(f1)
	assertMirrors(t, tree.Root(), "removed")

	nested := tree.Root().Nodes()[2].Nested()
	assert.Equal(t, []filters.Filter{replacement, f3}, nested.Filters())
}

func Test_Tree_FollowsChildrenChanges(t *testing.T) {
	f1 := filters.NewFilter("f1", filters.ModeShow, true)
	window := filters.NewChildModelFilter("window", true)
	m := filters.NewModel(f1, window)

	tree := newTree(t, m)

	c1 := filters.NewFilter("c1", filters.ModeHide, true)
	c2 := filters.NewFilter("c2", filters.ModeHide, true)
	window.Children().Add(c1)
	require.NoError(t, window.Children().InsertBefore(c2, c1))

	nested := tree.Root().Nodes()[1].Nested()
	assert.Equal(t, []filters.Filter{f1, c2, c1}, nested.Filters())

	f0 := filters.NewFilter("f0", filters.ModeShow, true)
	require.NoError(t, m.InsertBefore(f0, window))
	assert.Equal(t, []filters.Filter{f1, f0, c2, c1}, nested.Filters())
}

func Test_Tree_NestedChildModelFilter(t *testing.T) {
	inner := filters.NewChildModelFilter("inner", true)
	outer := filters.NewChildModelFilter("outer", true, inner)
	m := filters.NewModel(outer)

	tree := newTree(t, m)

	innerLevel := tree.Root().Nodes()[0].Nested().Nodes()[0].Nested()
	require.NotNil(t, innerLevel)
	assert.Empty(t, innerLevel.Filters())

	leaf := filters.NewFilter("leaf", filters.ModeShow, true)
	inner.Children().Add(leaf)

	assert.Equal(t, []filters.Filter{leaf}, innerLevel.Filters())
}

func Test_Tree_ReplacedWindowGetsNewLevel(t *testing.T) {
	c1 := filters.NewFilter("c1", filters.ModeHide, true)
	window := filters.NewChildModelFilter("window", true, c1)
	m := filters.NewModel(window)

	tree := newTree(t, m)
	before := tree.Root().Nodes()[0].Nested()

	toggled := filters.Toggle(window, false)
	require.NoError(t, m.Replace(window, toggled))

	after := tree.Root().Nodes()[0].Nested()
	assert.NotSame(t, before, after)
	assert.Empty(t, before.Filters())
	assert.Equal(t, []filters.Filter{c1}, after.Filters())
}

func Test_Tree_Close(t *testing.T) {
	m := filters.NewModel()
	tree := New(m, logger.Nop())
	root := tree.Root()

	tree.Close()
	tree.Close()

	m.Add(filters.NewFilter("late", filters.ModeShow, true))

	assert.Empty(t, root.Filters())
	assert.Nil(t, tree.Root())
}

func Test_Tree_RandomOperations(t *testing.T) {
	for _, seed := range []int64{3, 11, 99, 2024} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rnd := rand.New(rand.NewSource(seed))

			windows := []*filters.WindowFilter{
				filters.NewChildModelFilter("w0", true),
				filters.NewChildModelFilter("w1", true),
			}

			m := filters.NewModel()

			// each list draws from its own filters so no filter is ever in two lists
			targets := []filters.MutableFilterModel{m}
			pools := [][]filters.Filter{plainFilters("r", 5)}
			for _, w := range windows {
				pools[0] = append(pools[0], w)
				targets = append(targets, w.Children())
				pools = append(pools, plainFilters(w.Name()+"c", 3))
			}

			tree := newTree(t, m)

			for step := range 300 {
				i := 0
				if rnd.Intn(3) == 0 {
					i = 1 + rnd.Intn(len(windows))
				}

				target, pool := targets[i], pools[i]
				f := pool[rnd.Intn(len(pool))]

				switch rnd.Intn(3) {
				case 0:
					target.Add(f)
				case 1:
					target.Remove(f)
				default:
					anchor := pool[rnd.Intn(len(pool))]
					if anchor != f {
						require.NoError(t, target.InsertBefore(f, anchor))
					}
				}

				assertMirrors(t, tree.Root(), fmt.Sprintf("step %d", step))
			}
		})
	}
}

func plainFilters(prefix string, n int) []filters.Filter {
	pool := make([]filters.Filter, 0, n)
	for i := range n {
		pool = append(pool, filters.NewFilter(fmt.Sprintf("%s%d", prefix, i), filters.Mode(i%3), true))
	}

	return pool
}

func Test_Tree_Render(t *testing.T) {
	f1 := filters.NewFilter("errors", filters.ModeHighlight, true)
	c1 := filters.NewFilter("noise", filters.ModeHide, false)
	window := filters.NewChildModelFilter("window", true, c1)

	tree := newTree(t, filters.NewModel(f1, window))

	out := tree.Render(Style{Indent: 2})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "filters")
	assert.True(t, strings.HasPrefix(lines[1], "  "))
	assert.Contains(t, lines[1], "errors")
	assert.Contains(t, lines[1], "highlight")
	assert.Contains(t, lines[2], "+ ")
	assert.Contains(t, lines[2], "window")
	assert.True(t, strings.HasPrefix(lines[3], "    "))
	assert.Contains(t, lines[3], "noise")
	assert.Contains(t, lines[3], "(off)")
	assert.Equal(t, "enabled: show 0, hide 0, highlight 1, window 1", lines[4])

	withInherited := tree.Render(Style{Indent: 2, Inherited: true})
	lines = strings.Split(strings.TrimRight(withInherited, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.Contains(t, lines[3], "^ errors")
	assert.Contains(t, lines[4], "noise")
}

func Test_Tree_Render_Summary(t *testing.T) {
	shown := filters.NewFilter("shown", filters.ModeShow, true)
	hidden := filters.NewFilter("hidden", filters.ModeHide, true)
	child := filters.NewFilter("child", filters.ModeShow, true)
	window := filters.NewChildModelFilter("window", true, child)

	m := filters.NewModel(shown, window)
	tree := newTree(t, m)

	summary := func() string {
		out := strings.TrimRight(tree.Render(Style{Indent: 2}), "\n")
		return out[strings.LastIndex(out, "\n")+1:]
	}

	assert.Equal(t, "enabled: show 1, hide 0, highlight 0, window 1", summary())

	m.Add(hidden)
	assert.Equal(t, "enabled: show 1, hide 1, highlight 0, window 1", summary())

	require.NoError(t, m.Replace(shown, filters.Toggle(shown, false)))
	assert.Equal(t, "enabled: show 0, hide 1, highlight 0, window 1", summary())

	m.Remove(window)
	assert.Equal(t, "enabled: show 0, hide 1, highlight 0, window 0", summary())
}

func Test_Tree_Render_Closed(t *testing.T) {
	tree := New(filters.NewModel(filters.NewFilter("f", filters.ModeShow, true)), logger.Nop())
	tree.Close()

	assert.Equal(t, "filters\n", tree.Render(Style{Indent: 2}))
}

func Test_Tree_RenderClosed(t *testing.T) {
	tree := New(filters.NewModel(filters.NewFilter("f", filters.ModeShow, true)), logger.Nop())
	tree.Close()

	assert.Equal(t, 1, strings.Count(tree.Render(Style{Indent: 2}), "\n"))
}
