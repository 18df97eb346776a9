package cli

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/olekukonko/tablewriter"

	"logview/internal/app/bus"
	"logview/internal/app/errors"
)

// ModelMatcher selects events by the label of the model they happened in
type ModelMatcher struct {
	pattern glob.Glob
}

// NewModelMatcher compiles a label glob; '*' stays within one path segment, '**' crosses them
func NewModelMatcher(pattern string) (*ModelMatcher, error) {
	if pattern == "" {
		pattern = DefaultModels
	}

	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrInvalidModelPattern, pattern, err)
	}

	return &ModelMatcher{pattern: g}, nil
}

// Match reports whether a model label is selected
func (m *ModelMatcher) Match(label string) bool {
	return m.pattern.Match(label)
}

// eventRow is one table line describing a bus message
type eventRow struct {
	model  string
	filter string
	detail string
}

func describeRef(ref bus.FilterRef) string {
	if ref.ID == "" {
		return ""
	}

	if !ref.Enabled {
		return ref.Name + " (off)"
	}

	return ref.Name
}

func toRow(msg bus.Message) (eventRow, bool) {
	switch d := msg.Data.(type) {
	case bus.FilterAdded:
		detail := "at end"
		if d.Before.ID != "" {
			detail = "before " + describeRef(d.Before)
		}

		return eventRow{model: d.Model, filter: describeRef(d.Filter), detail: detail}, true
	case bus.FilterRemoved:
		return eventRow{model: d.Model, filter: describeRef(d.Filter)}, true
	case bus.FilterReplaced:
		return eventRow{model: d.Model, filter: describeRef(d.Old), detail: "with " + describeRef(d.New)}, true
	case bus.FilterMoved:
		return eventRow{model: d.Model, filter: describeRef(d.Filter)}, true
	case bus.SubModelChanged:
		return eventRow{model: d.Model, filter: describeRef(d.Boundary), detail: d.SubModel}, true
	default:
		return eventRow{}, false
	}
}

// RenderEvents draws the selected messages as a table in publish order
func RenderEvents(messages []bus.Message, matcher *ModelMatcher) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Model", "Event", "Filter", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	shown := 0

	for _, msg := range messages {
		row, ok := toRow(msg)
		if !ok || !matcher.Match(row.model) {
			continue
		}

		shown++
		table.Append([]string{fmt.Sprintf("%d", shown), row.model, string(msg.Type), row.filter, row.detail})
	}

	table.SetFooter([]string{"", "", "", "Events", fmt.Sprintf("%d", shown)})
	table.Render()

	return buf.String()
}

// FormatEvent renders a selected message as one line of a live event stream
func FormatEvent(msg bus.Message, matcher *ModelMatcher) (string, bool) {
	row, ok := toRow(msg)
	if !ok || !matcher.Match(row.model) {
		return "", false
	}

	line := fmt.Sprintf("%-24s %-18s %-16s %s", row.model, msg.Type, row.filter, row.detail)

	return strings.TrimRight(line, " "), true
}
