package bus

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Recorder is a synchronous Bus that keeps every published message in order.
// Subscribers receive nothing; read the history with Messages.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	closed   bool
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Subscribe(ctx context.Context) <-chan Message {
	return NoOp().Subscribe(ctx)
}

func (r *Recorder) Publish(msg Message) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	msg.Timestamp = time.Now()
	r.messages = append(r.messages, msg)
}

func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
}

// Messages returns the recorded messages in publish order
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.messages)
}
