// ABOUTME: Image-change notifier relays a preview image's URL to an embedding parent
// ABOUTME: Deduplicates consecutive values and restricts delivery to one origin

package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// DefaultSelector identifies the preview image the notifier observes
const DefaultSelector = "img.previewImg"

// Config parameterizes a Notifier. The knobs cover the historical script
// variants that differed only in payload field name, embedding check, and
// data: URI strictness.
type Config struct {
	// TargetOrigin is the single origin messages are addressed to.
	// Required; "*" is rejected.
	TargetOrigin string

	// PayloadField carries the URL in the message ("dataUrl" or "src").
	// Defaults to "dataUrl".
	PayloadField string

	// RequireEmbedded suppresses delivery while no parent is attached
	RequireEmbedded bool

	// RequireDataURI restricts delivery to data:image/... URLs
	RequireDataURI bool

	// Selector names the observed image element. Defaults to DefaultSelector.
	Selector string
}

// Sender delivers a message to a parent context at the given origin.
// Implementations must drop the message silently when the receiving side's
// origin does not match; the notifier never observes delivery failure.
type Sender interface {
	Deliver(ctx context.Context, origin string, msg Message) error
}

// Notifier watches an image source and relays each distinct value to a
// trusted parent, at most once per consecutive value. Every failure mode
// (empty URL, no parent, filtered URL, origin mismatch) is a benign no-op.
type Notifier struct {
	cfg Config

	mu       sync.Mutex
	lastSent string
	sender   Sender
}

// NewNotifier creates a notifier for the given configuration
func NewNotifier(cfg Config) (*Notifier, error) {
	if cfg.TargetOrigin == "" {
		return nil, errors.New("target origin cannot be empty")
	}
	if cfg.TargetOrigin == "*" {
		return nil, errors.New("target origin cannot be the wildcard origin")
	}
	switch cfg.PayloadField {
	case "":
		cfg.PayloadField = FieldDataURL
	case FieldDataURL, FieldSrc:
	default:
		return nil, errors.New("payload field must be 'dataUrl' or 'src'")
	}
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}

	return &Notifier{cfg: cfg}, nil
}

// Config returns the notifier's effective configuration
func (n *Notifier) Config() Config {
	return n.cfg
}

// Attach connects an embedding parent. A nil sender detaches.
func (n *Notifier) Attach(s Sender) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sender = s
}

// Detach disconnects the embedding parent
func (n *Notifier) Detach() {
	n.Attach(nil)
}

// Evaluate runs one pass of the relay decision for the current URL.
// Each step that declines to send returns without error.
func (n *Notifier) Evaluate(ctx context.Context, url string) {
	if url == "" {
		return
	}

	n.mu.Lock()

	if n.cfg.RequireEmbedded && n.sender == nil {
		n.mu.Unlock()
		return
	}

	if n.cfg.RequireDataURI && !strings.HasPrefix(url, "data:image/") {
		n.mu.Unlock()
		return
	}

	if url == n.lastSent {
		n.mu.Unlock()
		return
	}

	// Record before delivery: the browser-side original updates its
	// last-sent variable and then posts, with no delivery confirmation.
	n.lastSent = url
	sender := n.sender
	n.mu.Unlock()

	if sender == nil {
		// No parent and no embedding check configured: the post goes
		// nowhere, exactly like a top-level window posting to itself
		// with a foreign target origin.
		return
	}

	_ = sender.Deliver(ctx, n.cfg.TargetOrigin, NewMessage(n.cfg.PayloadField, url))
}

// Observe evaluates the image's current value, then re-evaluates on every
// change until ctx is done. The initial pass matches the page-load trigger;
// the watch matches the DOM mutation trigger. Each wakeup re-reads the
// image's current value rather than the value the channel carried, so the
// notifier converges on the latest URL even when a burst of writes
// overflows the watch buffer.
func (n *Notifier) Observe(ctx context.Context, img *ObservedImage) {
	changes, stop := img.Watch()
	defer stop()

	n.Evaluate(ctx, img.Current())

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			n.Evaluate(ctx, img.Current())
		}
	}
}
