package cli

import (
	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandHelp CommandType = iota
	CommandReplay
	CommandTree
	CommandVersion
)

// DefaultModels selects every model label
const DefaultModels = "**"

// Options contains the parsed command-line arguments
type Options struct {
	Type      CommandType
	Script    string
	Models    string
	Inherited bool
	Watch     bool
	Follow    bool
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandHelp,
		Models: DefaultModels,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildReplayCommand(result),
		buildTreeCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logview",
		Short: "Replay and inspect hierarchical log filter models",
		Long: `Logview replays scripted edits of a log filter list and shows how
every filter model and sub-model observed them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().BoolVar(&result.Inherited, "inherited", false, "Show filters inherited by nested lists")
	cmd.PersistentFlags().BoolVarP(&result.Watch, "watch", "w", false, "Replay again whenever the script changes")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildReplayCommand creates the replay subcommand
func buildReplayCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "replay <script.yaml>",
		Aliases: []string{"r"},
		Short:   "Run a script and print every model event followed by the filter tree",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandReplay
			result.Script = args[0]
		},
	}

	cmd.Flags().StringVarP(&result.Models, "models", "m", DefaultModels, "Glob selecting model labels, e.g. 'root/*'")
	cmd.Flags().BoolVarP(&result.Follow, "follow", "f", false, "Stream events line by line as the bus delivers them")

	return cmd
}

// buildTreeCommand creates the tree subcommand
func buildTreeCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tree <script.yaml>",
		Aliases: []string{"t"},
		Short:   "Run a script and print the resulting filter tree",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandTree
			result.Script = args[0]
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
