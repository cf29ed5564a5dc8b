package subscribe

import (
	"log"
	"time"

	"lemmyopml/internal/domain"
)

// DefaultDelay is the pause between consecutive subscribe calls.
const DefaultDelay = 500 * time.Millisecond

// Service subscribes a user to communities sequentially. The delay is a
// plain sleep between requests, not adaptive backoff.
type Service struct {
	client domain.Client
	delay  time.Duration
	sleep  func(time.Duration)
	log    *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDelay overrides the pause between subscribe calls.
func WithDelay(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.delay = d
		}
	}
}

// WithSleep replaces the sleep function; tests record instead of waiting.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Service) { s.sleep = fn }
}

// New returns a subscribe service using the given API client.
func New(client domain.Client, logger *log.Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		delay:  DefaultDelay,
		sleep:  time.Sleep,
		log:    logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run attempts every community in order. A failed subscribe is logged and
// counted; it never stops the remaining entries. The delay runs between
// calls, not after the last one.
func (s *Service) Run(token domain.Token, communities []domain.Community) (subscribed, failed int) {
	for i, c := range communities {
		if i > 0 {
			s.sleep(s.delay)
		}
		if err := s.client.Subscribe(token, c); err != nil {
			s.log.Printf("could not subscribe to %s: %v", c.Ref(), err)
			failed++
			continue
		}
		s.log.Printf("subscribed to %s", c.Ref())
		subscribed++
	}
	return subscribed, failed
}
