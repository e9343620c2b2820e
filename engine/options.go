package engine

import "time"

// DefaultDropInterval is the gravity period.
const DefaultDropInterval = time.Second

// Option configures a GameSession.
type Option func(*GameSession)

// WithRandomizer sets the source of spawned kinds.
func WithRandomizer(r Randomizer) Option {
	return func(s *GameSession) {
		if r != nil {
			s.randomizer = r
		}
	}
}

// WithSeed uses a UniformRandomizer seeded with seed.
func WithSeed(seed uint64) Option {
	return func(s *GameSession) {
		s.randomizer = NewUniformRandomizer(seed)
	}
}

// WithKickPolicy sets the rotation kick policy. nil disables kicks.
func WithKickPolicy(p KickPolicy) Option {
	return func(s *GameSession) {
		if p == nil {
			p = NoKicks{}
		}
		s.kicks = p
	}
}

// WithDropInterval sets the gravity period. Non-positive values are ignored.
func WithDropInterval(d time.Duration) Option {
	return func(s *GameSession) {
		if d > 0 {
			s.dropInterval = d
		}
	}
}

// WithListener registers a settlement listener. It may be given more than once.
func WithListener(l Listener) Option {
	return func(s *GameSession) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// WithField starts the session on f instead of an empty field. The session
// takes ownership of f.
func WithField(f *Field) Option {
	return func(s *GameSession) {
		if f != nil {
			s.field = f
		}
	}
}
