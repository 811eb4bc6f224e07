package view

import (
	"errors"
	"strings"
	"sync"
)

// Notifier raises a blocking user-facing notice.
type Notifier interface {
	Alert(message string)
}

// Clipboard writes text to the user's clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Navigator moves the user to another page, or opens one beside the current.
type Navigator interface {
	Navigate(url string)
	Open(url string)
}

type EffectKind string

const (
	EffectAlert     EffectKind = "alert"
	EffectClipboard EffectKind = "clipboard"
	EffectNavigate  EffectKind = "navigate"
	EffectOpen      EffectKind = "open"
)

// Effect is a side effect the browser applies on its next render.
type Effect struct {
	Kind  EffectKind `json:"kind"`
	Value string     `json:"value"`
}

// EffectQueue implements every capability by recording effects until they
// are drained by a render.
type EffectQueue struct {
	mu       sync.Mutex
	pending  []Effect
	onChange func()
}

func NewEffectQueue(onChange func()) *EffectQueue {
	if onChange == nil {
		onChange = func() {}
	}
	return &EffectQueue{onChange: onChange}
}

func (q *EffectQueue) Alert(message string) {
	q.push(Effect{Kind: EffectAlert, Value: message})
}

func (q *EffectQueue) WriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("clipboard text is empty")
	}
	q.push(Effect{Kind: EffectClipboard, Value: text})
	return nil
}

func (q *EffectQueue) Navigate(url string) {
	q.push(Effect{Kind: EffectNavigate, Value: url})
}

func (q *EffectQueue) Open(url string) {
	q.push(Effect{Kind: EffectOpen, Value: url})
}

// Drain returns and forgets the pending effects in the order they happened.
func (q *EffectQueue) Drain() []Effect {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.pending
	q.pending = nil
	return out
}

func (q *EffectQueue) push(e Effect) {
	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()

	q.onChange()
}

// Broadcaster fans change signals out to stream subscribers. Signals are
// coalesced: a slow subscriber sees at most one pending signal.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan struct{}
	closed bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan struct{})}
}

// Subscribe returns a signal channel and its cancel func. The channel is
// closed when the broadcaster is closed or the subscription cancelled.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan struct{}, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
