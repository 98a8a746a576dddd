package notifications

import (
	"context"
	"log"
	"sync"
	"time"
)

// Snapshot is one poll result. On a read failure the list is empty and Err
// carries the indicator; the error is surfaced, not propagated as a panic
// or retried automatically.
type Snapshot struct {
	Notifications []Notification
	HasUnread     bool
	Err           error
}

// Poller fetches recent notifications on a fixed interval while the
// consuming view is alive. Start/Stop bound the loop to the view's
// lifetime; there is no free-running timer left behind.
type Poller struct {
	service  Service
	scope    string
	interval time.Duration
	onUpdate func(Snapshot)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewPoller(service Service, scope string, interval time.Duration, onUpdate func(Snapshot)) *Poller {
	return &Poller{service: service, scope: scope, interval: interval, onUpdate: onUpdate}
}

// Start launches the poll loop. The loop polls once immediately, then every
// interval, until Stop is called or ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})

	go p.run(ctx, p.done)
}

// Stop cancels the loop and waits for it to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (p *Poller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	list, err := p.service.Recent(ctx, p.scope)

	snap := Snapshot{Notifications: list, HasUnread: HasUnread(list)}
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("notification poll: %v", err)
		}
		snap = Snapshot{Err: err}
	}
	if p.onUpdate != nil {
		p.onUpdate(snap)
	}
}
