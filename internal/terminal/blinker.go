package terminal

import (
	"context"
	"sync"
	"time"
)

// Blinker flips a visibility flag on a fixed interval until stopped.
// It is safe for concurrent use.
type Blinker struct {
	interval time.Duration

	mu      sync.Mutex
	visible bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewBlinker creates a stopped blinker with a visible caret.
func NewBlinker(interval time.Duration) *Blinker {
	return &Blinker{interval: interval, visible: true}
}

// Start begins toggling, calling onToggle after every flip from the blinker's
// goroutine. A running blink is replaced. It stops when ctx is done or Stop is called.
func (b *Blinker) Start(ctx context.Context, onToggle func(visible bool)) {
	b.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	b.mu.Lock()
	b.cancel = cancel
	b.done = done
	b.visible = true
	b.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.mu.Lock()
				b.visible = !b.visible
				v := b.visible
				b.mu.Unlock()
				if onToggle != nil {
					onToggle(v)
				}
			}
		}
	}()
}

// Stop cancels the blink, waits for it to finish and leaves the caret visible.
func (b *Blinker) Stop() {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.cancel, b.done = nil, nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	b.mu.Lock()
	b.visible = true
	b.mu.Unlock()
}

// Running reports whether a blink is active.
func (b *Blinker) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cancel != nil
}

// Visible reports the current caret state.
func (b *Blinker) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}
