package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logview/internal/app/bus"
	"logview/internal/app/errors"
	"logview/internal/app/filters"
	"logview/internal/app/filtertree"
	"logview/internal/app/watcher"
	"logview/internal/config"
	"logview/internal/config/logger"
)

const windowScript = `
filters:
  - {name: alpha}
  - {name: beta, mode: hide, enabled: false}
  - {name: gamma, mode: highlight}
  - {name: win, mode: window, children: [gamma]}
steps:
  - {op: add, filter: alpha}
  - {op: add, filter: win}
  - {op: insert, filter: beta, before: win}
`

func writeScript(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "edits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o600))

	return path
}

type cliFixture struct {
	cli     *cli
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	log     *logger.MockLogger
	watcher *watcher.MockWatcher
}

func newCLIFixture(t *testing.T, ctrl *gomock.Controller, options *Options) *cliFixture {
	t.Helper()

	root := filters.NewModel()
	tree := filtertree.New(root, logger.Nop())
	t.Cleanup(tree.Close)

	cfg := config.DefaultConfig()
	b := bus.New(cfg, logger.Nop())
	t.Cleanup(b.Close)

	x := &cliFixture{
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
		log:     logger.NewMockLogger(ctrl),
		watcher: watcher.NewMockWatcher(ctrl),
	}

	x.cli = &cli{
		options: options,
		cfg:     cfg,
		root:    root,
		tree:    tree,
		bus:     b,
		watcher: x.watcher,
		log:     x.log,
		out:     x.out,
		errOut:  x.errOut,
	}

	return x
}

func Test_NewCLI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	options := &Options{Type: CommandHelp}
	root := filters.NewModel()
	tree := filtertree.New(root, logger.Nop())
	mockBus := bus.NewMockBus(ctrl)
	mockWatcher := watcher.NewMockWatcher(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	cliInstance := NewCLI(options, cfg, root, tree, mockBus, mockWatcher, mockLogger)
	assert.NotNil(t, cliInstance)

	instance, ok := cliInstance.(*cli)
	assert.True(t, ok)
	assert.Equal(t, options, instance.options)
	assert.Equal(t, cfg, instance.cfg)
	assert.Equal(t, root, instance.root)
	assert.Equal(t, tree, instance.tree)
	assert.Equal(t, mockBus, instance.bus)
	assert.Equal(t, mockWatcher, instance.watcher)
	assert.Equal(t, mockLogger, instance.log)
	assert.Equal(t, os.Stdout, instance.out)
	assert.Equal(t, os.Stderr, instance.errOut)
}

func Test_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, windowScript)

	tests := []struct {
		name        string
		options     *Options
		expected    []string
		notExpected []string
	}{
		{
			name:    "replay prints events then tree",
			options: &Options{Type: CommandReplay, Script: script, Models: DefaultModels},
			expected: []string{
				"filter_added",
				"submodel_created",
				"root/win",
				"before win",
				"filters",
				"- alpha [show]",
				"- beta [hide] (off)",
				"+ win [window]",
				"    - gamma [highlight]",
				"enabled: show 1, hide 0, highlight 0, window 1",
			},
			notExpected: []string{"^ alpha"},
		},
		{
			name:        "replay with model selection",
			options:     &Options{Type: CommandReplay, Script: script, Models: "root/*"},
			expected:    []string{"filter_added", "beta (off)", "at end"},
			notExpected: []string{"before win", "submodel_created"},
		},
		{
			name:        "tree prints tree only",
			options:     &Options{Type: CommandTree, Script: script, Models: DefaultModels},
			expected:    []string{"- alpha [show]", "+ win [window]"},
			notExpected: []string{"filter_added"},
		},
		{
			name:     "tree with inherited filters",
			options:  &Options{Type: CommandTree, Script: script, Models: DefaultModels, Inherited: true},
			expected: []string{"    ^ alpha [show]", "    ^ beta [hide]", "    - gamma [highlight]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newCLIFixture(t, ctrl, tt.options)
			x.log.EXPECT().Debug().Return(nil)

			exitCode, err := x.cli.Execute()

			require.NoError(t, err)
			assert.Equal(t, 0, exitCode)
			assert.Empty(t, x.errOut.String())

			for _, s := range tt.expected {
				assert.Contains(t, x.out.String(), s)
			}

			for _, s := range tt.notExpected {
				assert.NotContains(t, x.out.String(), s)
			}
		})
	}
}

func Test_Execute_ChildrenListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, `
filters:
  - {name: alpha}
  - {name: gamma}
  - {name: win, mode: window}
steps:
  - {op: add, filter: alpha}
  - {op: add, filter: win}
  - {op: child-add, parent: win, filter: gamma}
  - {op: insert, parent: win, filter: alpha, before: gamma}
  - {op: child-remove, parent: win, filter: gamma}
`)

	x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: script, Models: "root/*"})
	x.log.EXPECT().Debug().Return(nil)
	x.log.EXPECT().Error().Return(nil)

	exitCode, err := x.cli.Execute()

	assert.ErrorIs(t, err, errors.ErrFilterAlreadyInModel)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, 1, strings.Count(x.out.String(), "root/win:children"))
	assert.Contains(t, x.out.String(), "gamma")
	assert.Contains(t, x.errOut.String(), "step 4")
}

func Test_Execute_ChildrenListEvents_Removal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, `
filters:
  - {name: gamma}
  - {name: win, mode: window}
steps:
  - {op: add, filter: win}
  - {op: child-add, parent: win, filter: gamma}
  - {op: toggle, parent: win, filter: gamma}
  - {op: child-remove, parent: win, filter: gamma}
`)

	x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: script, Models: "root/*"})
	x.log.EXPECT().Debug().Return(nil)

	exitCode, err := x.cli.Execute()

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)

	out := x.out.String()
	assert.Equal(t, 3, strings.Count(out, "root/win:children"))
	assert.Equal(t, 1, strings.Count(out, "filter_added"))
	assert.Equal(t, 1, strings.Count(out, "filter_replaced"))
	assert.Equal(t, 1, strings.Count(out, "filter_removed"))
}

func Test_Execute_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, windowScript)

	tests := []struct {
		name    string
		models  string
		added   int
		created int
	}{
		{name: "every model", models: DefaultModels, added: 4, created: 1},
		{name: "sub-models only", models: "root/*", added: 1, created: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: script, Models: tt.models, Follow: true})
			x.log.EXPECT().Debug().Return(nil)

			exitCode, err := x.cli.Execute()

			require.NoError(t, err)
			assert.Equal(t, 0, exitCode)
			assert.Nil(t, x.cli.marks)

			out := x.out.String()
			events, tree, found := strings.Cut(out, "filters\n")
			require.True(t, found)

			assert.Equal(t, tt.added, strings.Count(events, "filter_added"))
			assert.Equal(t, tt.created, strings.Count(events, "submodel_created"))
			assert.NotContains(t, events, "EVENTS")
			assert.NotContains(t, events, string(bus.EventReplayDone))
			assert.Contains(t, tree, "+ win [window]")
		})
	}
}

func Test_Execute_Info(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		command  CommandType
		expected string
	}{
		{name: "version", command: CommandVersion, expected: config.Version},
		{name: "help", command: CommandHelp, expected: "Usage:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newCLIFixture(t, ctrl, &Options{Type: tt.command})
			x.log.EXPECT().Debug().Return(nil)

			exitCode, err := x.cli.Execute()

			require.NoError(t, err)
			assert.Equal(t, 0, exitCode)
			assert.Contains(t, x.out.String(), tt.expected)
		})
	}
}

func Test_Execute_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name     string
		options  *Options
		expected error
	}{
		{
			name:     "missing script",
			options:  &Options{Type: CommandReplay, Script: filepath.Join(t.TempDir(), "missing.yaml")},
			expected: errors.ErrFailedToReadScript,
		},
		{
			name:     "invalid model pattern",
			options:  &Options{Type: CommandReplay, Script: writeScript(t, windowScript), Models: "root/["},
			expected: errors.ErrInvalidModelPattern,
		},
		{
			name:     "malformed script",
			options:  &Options{Type: CommandTree, Script: writeScript(t, "steps: add\n")},
			expected: errors.ErrFailedToParseScript,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newCLIFixture(t, ctrl, tt.options)
			x.log.EXPECT().Debug().Return(nil)
			x.log.EXPECT().Error().Return(nil)

			exitCode, err := x.cli.Execute()

			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, 1, exitCode)
			assert.Contains(t, x.errOut.String(), "Error:")
			assert.Empty(t, x.out.String())
		})
	}
}

func Test_Execute_FailingStepStillPrintsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, `
filters: [{name: alpha}, {name: beta}]
steps:
  - {op: add, filter: alpha}
  - {op: replace, filter: beta, with: alpha}
`)

	x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: script, Models: DefaultModels})
	x.log.EXPECT().Debug().Return(nil)
	x.log.EXPECT().Error().Return(nil)

	exitCode, err := x.cli.Execute()

	assert.ErrorIs(t, err, errors.ErrFilterNotInModel)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, x.out.String(), "filter_added")
	assert.Contains(t, x.out.String(), "- alpha [show]")
	assert.Contains(t, x.errOut.String(), "step 2")
}

func Test_watch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, windowScript)

	x := newCLIFixture(t, ctrl, &Options{Type: CommandTree, Script: script, Models: DefaultModels, Watch: true})
	x.log.EXPECT().Debug().Return(nil).Times(2)

	x.watcher.EXPECT().Watch(gomock.Any(), script, gomock.Any()).DoAndReturn(
		func(_ context.Context, path string, onChange func()) error {
			assert.Equal(t, []string{"alpha", "beta", "win"}, names(x.cli.root.Filters()))

			require.NoError(t, os.WriteFile(path, []byte("filters: [{name: delta}]\nsteps: [{op: add, filter: delta}]\n"), 0o600))
			onChange()

			return nil
		},
	)

	err := x.cli.watch(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, []string{"delta"}, names(x.cli.root.Filters()))
	assert.Equal(t, 2, strings.Count(x.out.String(), "filters\n"))
	assert.Contains(t, x.out.String(), "reloaded "+script)
	assert.Contains(t, x.out.String(), "- delta [show]")
}

func Test_watch_ReportsFailedRunsAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	script := writeScript(t, "steps: add\n")

	x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: script, Watch: true})
	x.log.EXPECT().Debug().Return(nil).Times(2)
	x.log.EXPECT().Error().Return(nil)

	x.watcher.EXPECT().Watch(gomock.Any(), script, gomock.Any()).DoAndReturn(
		func(_ context.Context, path string, onChange func()) error {
			require.NoError(t, os.WriteFile(path, []byte("filters: [{name: delta}]\nsteps: [{op: add, filter: delta}]\n"), 0o600))
			onChange()

			return nil
		},
	)

	err := x.cli.watch(context.Background(), true)

	require.NoError(t, err)
	assert.Contains(t, x.errOut.String(), "Error:")
	assert.Contains(t, x.out.String(), "- delta [show]")
}

func Test_watch_Failures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("invalid model pattern", func(t *testing.T) {
		x := newCLIFixture(t, ctrl, &Options{Type: CommandReplay, Script: writeScript(t, windowScript), Models: "root/[", Watch: true})

		err := x.cli.watch(context.Background(), true)

		assert.ErrorIs(t, err, errors.ErrInvalidModelPattern)
		assert.Empty(t, x.out.String())
	})

	t.Run("watch error", func(t *testing.T) {
		script := writeScript(t, windowScript)

		x := newCLIFixture(t, ctrl, &Options{Type: CommandTree, Script: script, Watch: true})
		x.log.EXPECT().Debug().Return(nil)
		x.watcher.EXPECT().Watch(gomock.Any(), script, gomock.Any()).Return(errors.ErrFailedToWatchScript)

		err := x.cli.watch(context.Background(), false)

		assert.ErrorIs(t, err, errors.ErrFailedToWatchScript)
	})
}
