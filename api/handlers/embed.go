// ABOUTME: Embed relay exposing the preview image stream to an embedding parent
// ABOUTME: Serves an SSE endpoint that delivers image-change notifications

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"moodboard-app-api/core/interfaces"
	"moodboard-app-api/core/notify"
	"github.com/go-chi/chi/v5"
)

const (
	// senderBuffer bounds queued notifications per connection
	senderBuffer = 8

	// keepaliveInterval keeps idle SSE connections open through proxies
	keepaliveInterval = 25 * time.Second
)

// EmbedRelay owns the observed preview image and its change notifier, and
// exposes the event-stream route an embedding parent attaches to. At most
// one parent is attached at a time; a newer connection replaces the older.
type EmbedRelay struct {
	img      *notify.ObservedImage
	notifier *notify.Notifier
	logger   interfaces.Logger

	mu      sync.Mutex
	current *sseSender
}

// NewEmbedRelay creates an embed relay for the given notifier configuration
func NewEmbedRelay(cfg notify.Config, logger interfaces.Logger) (*EmbedRelay, error) {
	notifier, err := notify.NewNotifier(cfg)
	if err != nil {
		return nil, err
	}

	return &EmbedRelay{
		img:      notify.NewObservedImage(),
		notifier: notifier,
		logger:   logger,
	}, nil
}

// Publish records a freshly generated image URL as the current preview image
func (r *EmbedRelay) Publish(url string) {
	r.img.Set(url)
}

// Run drives the notifier from image changes until ctx is cancelled
func (r *EmbedRelay) Run(ctx context.Context) {
	r.notifier.Observe(ctx, r.img)
}

// RegisterRoutes registers the embed event-stream route on the router.
// The route is registered directly on chi because event streams bypass
// the request/response schema layer.
func (r *EmbedRelay) RegisterRoutes(router chi.Router) {
	router.Get("/api/embed/events", r.serveEvents)
}

// serveEvents handles GET /api/embed/events
func (r *EmbedRelay) serveEvents(w http.ResponseWriter, req *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// The server-wide write timeout would sever long-lived streams even
	// while keepalives flow; clear it for this connection.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	sender := &sseSender{
		origin: req.Header.Get("Origin"),
		events: make(chan notify.Message, senderBuffer),
	}

	r.mu.Lock()
	r.current = sender
	r.notifier.Attach(sender)
	r.mu.Unlock()

	defer r.detach(sender)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	r.logger.Info("Embed parent attached", map[string]interface{}{
		"origin": sender.origin,
	})

	// A parent that attaches after the first generation still gets the
	// current image, unless it was already delivered once.
	r.notifier.Evaluate(req.Context(), r.img.Current())

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case msg := <-sender.events:
			payload, err := json.Marshal(msg)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()

		case <-req.Context().Done():
			return
		}
	}
}

// detach removes the sender unless a newer connection already replaced it
func (r *EmbedRelay) detach(sender *sseSender) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == sender {
		r.notifier.Detach()
		r.current = nil
		r.logger.Info("Embed parent detached", map[string]interface{}{
			"origin": sender.origin,
		})
	}
}

// sseSender delivers notifications over a single SSE connection. Delivery
// mirrors cross-window messaging: a connection whose origin does not match
// the target origin silently receives nothing, and a full queue drops the
// notification rather than blocking the notifier.
type sseSender struct {
	origin string
	events chan notify.Message
}

// Deliver implements notify.Sender
func (s *sseSender) Deliver(ctx context.Context, origin string, msg notify.Message) error {
	// An empty connection origin means a same-origin parent.
	if s.origin != "" && s.origin != origin {
		return nil
	}

	select {
	case s.events <- msg:
	default:
	}
	return nil
}
