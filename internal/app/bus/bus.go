//go:generate mockgen -source=bus.go -destination=bus_mock.go -package=bus
package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"logview/internal/config"
	"logview/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventFilterAdded     MessageType = "filter_added"
	EventFilterRemoved   MessageType = "filter_removed"
	EventFilterReplaced  MessageType = "filter_replaced"
	EventFilterMoved     MessageType = "filter_moved"
	EventSubModelCreated MessageType = "submodel_created"
	EventSubModelRemoved MessageType = "submodel_removed"
	// EventReplayDone marks the end of one script run in a live event stream
	EventReplayDone MessageType = "replay_done"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// FilterRef identifies a filter inside a message. The zero value stands for no filter.
type FilterRef struct {
	ID      string
	Name    string
	Mode    string
	Enabled bool
}

// ModelEvent is the base struct for events of one labelled model
type ModelEvent struct {
	Model string
}

// FilterAdded indicates a filter joined a model in front of Before
type FilterAdded struct {
	ModelEvent
	Filter FilterRef
	Before FilterRef
}

// FilterRemoved indicates a filter left a model
type FilterRemoved struct {
	ModelEvent
	Filter FilterRef
}

// FilterReplaced indicates a filter was substituted in place
type FilterReplaced struct {
	ModelEvent
	Old FilterRef
	New FilterRef
}

// FilterMoved indicates a filter changed its position
type FilterMoved struct {
	ModelEvent
	Filter FilterRef
}

// SubModelChanged indicates a sub-model was created or torn down
type SubModelChanged struct {
	ModelEvent
	SubModel string
	Boundary FilterRef
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	cfg         *config.Config
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		cfg:         cfg,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel that is closed when ctx is done
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.cfg.Bus.Buffer)
	if b.closed {
		close(ch)
		return ch
	}

	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers without blocking the caller
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			} else if b.log != nil {
				b.log.Warn().Str("type", string(msg.Type)).Msg("Subscriber buffer full, message dropped")
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatRef(ref FilterRef) string {
	if ref.ID == "" {
		return "-"
	}

	return fmt.Sprintf("%s/%s", ref.Name, ref.Mode)
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case FilterAdded:
		return fmt.Sprintf("{model: %s, filter: %s, before: %s}", d.Model, formatRef(d.Filter), formatRef(d.Before))
	case FilterRemoved:
		return fmt.Sprintf("{model: %s, filter: %s}", d.Model, formatRef(d.Filter))
	case FilterReplaced:
		return fmt.Sprintf("{model: %s, old: %s, new: %s}", d.Model, formatRef(d.Old), formatRef(d.New))
	case FilterMoved:
		return fmt.Sprintf("{model: %s, filter: %s}", d.Model, formatRef(d.Filter))
	case SubModelChanged:
		return fmt.Sprintf("{model: %s, submodel: %s, boundary: %s}", d.Model, d.SubModel, formatRef(d.Boundary))
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus interface with no-op methods
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
