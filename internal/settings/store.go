package settings

import "sync"

const eventBufferSize = 16

// Store holds the current Settings. It is created once at startup and passed
// by reference to every component that reads or writes the configuration.
type Store struct {
	mu       sync.RWMutex
	current  Settings
	minRound int

	subs   []*Subscription
	closed bool
}

// Option configures a Store.
type Option func(*Store)

// WithMinimumRound overrides the round duration floor.
func WithMinimumRound(seconds int) Option {
	return func(s *Store) {
		s.minRound = max(MinimumRoundSeconds, seconds)
	}
}

// NewStore creates a store seeded with initial, clamped like any Set.
func NewStore(initial Settings, opts ...Option) *Store {
	s := &Store{minRound: MinimumRoundSeconds}
	for _, opt := range opts {
		opt(s)
	}
	s.current = initial.Clamp(s.minRound)
	return s
}

// Get returns the current settings.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// MinimumRound returns the configured round duration floor in seconds.
func (s *Store) MinimumRound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.minRound
}

// Set clamps next, commits it and notifies subscribers.
// It returns the committed value.
func (s *Store) Set(next Settings) Settings {
	s.mu.Lock()
	committed := next.Clamp(s.minRound)
	s.current = committed
	subs := append([]*Subscription(nil), s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.send(committed)
	}
	return committed
}

// Subscribe registers a new change subscription.
// On a closed store the returned subscription is already done.
func (s *Store) Subscribe() *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Close ends all subscriptions. Get and Set keep working.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
}

// Subscription delivers committed settings to one subscriber.
type Subscription struct {
	Changed <-chan Settings
	Done    <-chan struct{}

	changedCh chan Settings
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	sub := &Subscription{
		changedCh: make(chan Settings, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	sub.Changed = sub.changedCh
	sub.Done = sub.doneCh
	return sub
}

// send delivers a change without blocking; it drops when the buffer is full.
func (sub *Subscription) send(s Settings) {
	select {
	case sub.changedCh <- s:
	default:
	}
}

func (sub *Subscription) close() {
	close(sub.doneCh)
}
