// Package notify turns classified task transitions into dispatched emails.
package notify

import (
	"context"
	"log"
	"time"

	"taskflow/lifecycle"
	"taskflow/model"
	"taskflow/store"
)

// Dispatcher sends one rendered message. Implementations own any retry
// policy; the pipeline itself never retries.
type Dispatcher interface {
	Send(msg model.EmailMessage) error
}

// Pipeline consumes the store change feed and drives classify, resolve,
// render and dispatch for each event. All collaborators are passed in by the
// process entry point; the pipeline holds no global state.
type Pipeline struct {
	Resolver   *Resolver
	Renderer   *Renderer
	Dispatcher Dispatcher
}

// Run processes events until the channel closes. Notification is strictly
// best-effort and downstream of an already committed mutation, so no failure
// in here propagates anywhere.
func (p *Pipeline) Run(ctx context.Context, events <-chan store.ChangeEvent) {
	for ev := range events {
		p.Process(ctx, ev)
	}
}

// Process handles a single change event end to end.
func (p *Pipeline) Process(ctx context.Context, ev store.ChangeEvent) {
	tr := lifecycle.Classify(ev)
	if tr.Kind == lifecycle.Ignored {
		return
	}

	recipients, err := p.Resolver.Resolve(ctx, tr)
	if err != nil {
		log.Printf("notify: dropping %s notification for task %s: %v", tr.Kind, ev.TaskID, err)
		return
	}

	now := time.Now()
	for _, recipient := range recipients {
		msg := p.Renderer.Render(tr, recipient, now)
		if err := p.Dispatcher.Send(msg); err != nil {
			log.Printf("notify: dispatch of %s notification for task %s to %s failed: %v",
				tr.Kind, ev.TaskID, recipient.Email, err)
		}
	}
}
