//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"logview/internal/app/bus"
	"logview/internal/app/filters"
	"logview/internal/app/filtertree"
	"logview/internal/app/watcher"
	"logview/internal/config"
	"logview/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	options *Options
	cfg     *config.Config
	root    filters.MutableFilterModel
	tree    *filtertree.Tree
	bus     bus.Bus
	watcher watcher.Watcher
	log     logger.Logger
	out     io.Writer
	errOut  io.Writer
	mu      sync.Mutex
	// marks signals each replay_done read from the live stream; nil unless following
	marks <-chan struct{}
}

// NewCLI creates a new cli instance
func NewCLI(
	options *Options,
	cfg *config.Config,
	root filters.MutableFilterModel,
	tree *filtertree.Tree,
	b bus.Bus,
	watcher watcher.Watcher,
	log logger.Logger,
) CLI {
	return &cli{
		options: options,
		cfg:     cfg,
		root:    root,
		tree:    tree,
		bus:     b,
		watcher: watcher,
		log:     log,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	var err error

	switch c.options.Type {
	case CommandReplay:
		err = c.handleScript(true)
	case CommandTree:
		err = c.handleScript(false)
	case CommandVersion:
		c.handleVersion()
	default:
		c.handleHelp()
	}

	if err != nil {
		c.report(err)
		return 1, err
	}

	return 0, nil
}

// report logs a failed run and prints it to the error output
func (c *cli) report(err error) {
	c.log.Error().Err(err).Msg("Command failed")
	fmt.Fprintf(c.errOut, "%s %v\n", errorStyle.Render("Error:"), err)
}

// handleScript replays the script once, or on every change until interrupted when watching
func (c *cli) handleScript(withEvents bool) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if withEvents && c.options.Follow {
		matcher, err := NewModelMatcher(c.options.Models)
		if err != nil {
			return err
		}

		c.marks = c.stream(ctx, matcher)

		defer func() {
			cancel()
			for range c.marks {
			}
			c.marks = nil
		}()
	}

	if !c.options.Watch {
		return c.handleReplay(withEvents)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.watch(ctx, withEvents)
}

// stream prints the selected bus messages as they arrive until ctx is done.
// Every replay_done message is passed on to the returned channel.
func (c *cli) stream(ctx context.Context, matcher *ModelMatcher) <-chan struct{} {
	messages := c.bus.Subscribe(ctx)
	marks := make(chan struct{})

	go func() {
		defer close(marks)

		for msg := range messages {
			if msg.Type == bus.EventReplayDone {
				select {
				case marks <- struct{}{}:
				case <-ctx.Done():
					return
				}

				continue
			}

			if line, ok := FormatEvent(msg, matcher); ok {
				fmt.Fprintln(c.out, line)
			}
		}
	}()

	return marks
}

// watch keeps replaying into a cleared root model. Failed runs are reported and watching goes on.
func (c *cli) watch(ctx context.Context, withEvents bool) error {
	if _, err := NewModelMatcher(c.options.Models); err != nil {
		return err
	}

	c.rerun(withEvents)

	return c.watcher.Watch(ctx, c.options.Script, func() {
		fmt.Fprintln(c.out, reloadStyle.Render("reloaded "+c.options.Script))
		c.rerun(withEvents)
	})
}

func (c *cli) rerun(withEvents bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clear()

	if err := c.handleReplay(withEvents); err != nil {
		c.report(err)
	}
}

// clear removes every filter from the root model
func (c *cli) clear() {
	for _, f := range c.root.Filters() {
		c.root.Remove(f)
	}
}

// handleReplay runs the script against the root model and prints the result
func (c *cli) handleReplay(withEvents bool) error {
	c.log.Debug().Msgf("Replaying script: %s", c.options.Script)

	matcher, err := NewModelMatcher(c.options.Models)
	if err != nil {
		return err
	}

	script, err := LoadScript(c.options.Script)
	if err != nil {
		return err
	}

	recorder := bus.NewRecorder()

	var sink bus.Bus = recorder
	if c.marks != nil {
		sink = c.bus
	}

	publisher := bus.NewPublisher(sink, filters.RootLabel)
	publisher.Attach(c.root)

	runErr := script.Run(c.root)

	publisher.Close()

	switch {
	case c.marks != nil:
		c.bus.Publish(bus.Message{Type: bus.EventReplayDone, Critical: true})
		<-c.marks
	case withEvents:
		fmt.Fprintln(c.out, RenderEvents(recorder.Messages(), matcher))
	}

	style := filtertree.NewStyle(c.cfg)
	style.Inherited = c.options.Inherited

	fmt.Fprint(c.out, c.tree.Render(style))

	return runErr
}

// handleVersion displays version information
func (c *cli) handleVersion() {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
}

// handleHelp displays help information
func (c *cli) handleHelp() {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprintln(c.out, RenderHelp())
}
