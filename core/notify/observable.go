// ABOUTME: Observable image source value with best-effort change subscriptions
// ABOUTME: Models the watched preview image outside of any DOM dependency

package notify

import "sync"

// subscriberBuffer bounds each watch channel. Slow subscribers miss
// wakeups rather than blocking the writer; watchers must re-read Current
// on each receive to converge on the latest value.
const subscriberBuffer = 8

// ObservedImage is a thread-safe observable holding an image's effective
// source URL. The surrounding application sets it whenever it renders a new
// image; watchers are told about every write, including redundant ones,
// mirroring how DOM mutation callbacks fire for same-value attribute writes.
// Deduplication is the Notifier's job, not the observable's.
type ObservedImage struct {
	mu      sync.Mutex
	current string
	nextID  int
	subs    map[int]chan string
}

// NewObservedImage creates an empty observable image source
func NewObservedImage() *ObservedImage {
	return &ObservedImage{
		subs: make(map[int]chan string),
	}
}

// Current returns the last value set, or "" if none
func (o *ObservedImage) Current() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Set updates the source URL and notifies all watchers
func (o *ObservedImage) Set(url string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.current = url
	for _, ch := range o.subs {
		select {
		case ch <- url:
		default:
			// subscriber is behind; the pending receives it has not
			// drained yet still wake it, and it reads Current then
		}
	}
}

// Watch subscribes to source changes. It returns a channel that receives a
// wakeup for each write (best effort under bursts) and a stop function that
// must be called exactly once to unsubscribe and release the channel.
func (o *ObservedImage) Watch() (<-chan string, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++

	ch := make(chan string, subscriberBuffer)
	o.subs[id] = ch

	stop := func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if _, ok := o.subs[id]; ok {
			delete(o.subs, id)
			close(ch)
		}
	}

	return ch, stop
}
