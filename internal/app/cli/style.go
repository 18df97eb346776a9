package cli

import (
	"github.com/charmbracelet/lipgloss"

	"logview/internal/config"
)

var (
	sectionHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).MarginTop(1)
	commandName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	bodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	reloadStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)

	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyStyle.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderHelp renders the usage block
func RenderHelp() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyStyle.Render("  "+commandName.Render("logview replay <script.yaml>")+"   Print every model event, then the filter tree"),
		bodyStyle.Render("  "+commandName.Render("logview tree <script.yaml>")+"     Print the filter tree only"),
		bodyStyle.Render("  "+commandName.Render("logview version")+"                Show version"),
	)

	flags := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyStyle.Render("  "+commandName.Render("-m, --models <glob>")+"  Only events of matching models, e.g. 'root/*'"),
		bodyStyle.Render("  "+commandName.Render("--inherited")+"          Show filters inherited by nested lists"),
		bodyStyle.Render("  "+commandName.Render("-w, --watch")+"          Replay again whenever the script changes"),
		bodyStyle.Render("  "+commandName.Render("-f, --follow")+"         Stream replay events as they are delivered"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Flags:"),
		flags,
	)
}
