// Package engine implements the rules of a falling-block puzzle: a 10x20
// field, the seven pieces, collision, settlement, row clearing and scoring.
//
// A GameSession owns all game state and is driven by Commands applied one at a
// time. It is not safe for concurrent use; a Driver serializes input from
// several goroutines onto a single session.
package engine

import "time"

// GameSession is the aggregate of one game: the field, the falling piece,
// score, game-over flag and gravity timer.
type GameSession struct {
	field     *Field
	active    *ActivePiece
	score     int
	gameOver  bool
	stats     *Stats
	listeners []Listener

	randomizer   Randomizer
	kicks        KickPolicy
	dropInterval time.Duration

	dropCounter time.Duration
	lastTime    time.Duration
	resync      bool
}

// NewSession starts a game with an empty field and spawns the first piece.
func NewSession(opts ...Option) *GameSession {
	s := &GameSession{
		field:        NewField(),
		stats:        newStats(),
		kicks:        AlternatingKicks{},
		dropInterval: DefaultDropInterval,
		resync:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.randomizer == nil {
		s.randomizer = NewUniformRandomizer(uint64(time.Now().UnixNano()))
	}

	s.spawnNext()
	return s
}

// Apply executes one command. Commands that do not apply in the current state,
// and unknown ops, are ignored.
func (s *GameSession) Apply(cmd Command) {
	if cmd.Op == OpRestart {
		s.Restart()
		return
	}
	if s.gameOver || s.active == nil {
		return
	}

	switch cmd.Op {
	case OpMoveLeft:
		s.active.TryMove(s.field, -1)
	case OpMoveRight:
		s.active.TryMove(s.field, 1)
	case OpRotateCW:
		s.active.TryRotate(s.field, 1, s.kicks)
	case OpRotateCCW:
		s.active.TryRotate(s.field, -1, s.kicks)
	case OpSoftDrop:
		s.drop()
	case OpHardDrop:
		s.active.HardDrop(s.field)
		s.settle()
		s.dropCounter = 0
	case OpTick:
		s.tick(cmd.At)
	}
}

func (s *GameSession) MoveLeft()               { s.Apply(Intent(OpMoveLeft)) }
func (s *GameSession) MoveRight()              { s.Apply(Intent(OpMoveRight)) }
func (s *GameSession) RotateClockwise()        { s.Apply(Intent(OpRotateCW)) }
func (s *GameSession) RotateCounterClockwise() { s.Apply(Intent(OpRotateCCW)) }
func (s *GameSession) SoftDrop()               { s.Apply(Intent(OpSoftDrop)) }
func (s *GameSession) HardDrop()               { s.Apply(Intent(OpHardDrop)) }

// Tick advances gravity to the caller's timestamp now. Elapsed time is measured
// from the previous tick; a timestamp earlier than the last one counts as no
// time passing. The first tick of a game only sets the clock's origin, so
// timestamps may start anywhere.
func (s *GameSession) Tick(now time.Duration) { s.Apply(Tick(now)) }

// Restart discards the current game and starts a new one with the same
// randomizer, kick policy, drop interval and listeners. The first tick after
// a restart only resynchronizes the clock, so time spent on the game-over
// screen does not count as gravity.
func (s *GameSession) Restart() {
	s.field.Clear()
	s.active = nil
	s.score = 0
	s.gameOver = false
	s.dropCounter = 0
	s.resync = true
	s.stats.reset()
	s.spawnNext()
}

func (s *GameSession) tick(now time.Duration) {
	delta := now - s.lastTime
	s.lastTime = now
	if s.resync {
		s.resync = false
		return
	}
	if delta < 0 {
		delta = 0
	}

	s.dropCounter += delta
	if s.dropCounter > s.dropInterval {
		s.drop()
	}
}

// drop is the gravity step shared by ticks and manual soft drops.
func (s *GameSession) drop() {
	if s.active.SoftDrop(s.field) == Settled {
		s.settle()
	}
	s.dropCounter = 0
}

// settle merges the active piece, sweeps, scores and spawns the next piece.
func (s *GameSession) settle() {
	piece := s.active
	s.field.Merge(piece.Shape, piece.Pos)

	rows := s.field.Sweep()
	points := ScoreIncrement(len(rows))
	s.score += points
	s.stats.recordSettle(len(rows))

	s.spawnNext()

	ev := SettleEvent{
		Kind:     piece.Kind,
		Pos:      piece.Pos,
		Rows:     rows,
		Cleared:  len(rows),
		Points:   points,
		Score:    s.score,
		GameOver: s.gameOver,
	}
	for _, l := range s.listeners {
		l.OnSettle(ev)
	}
}

func (s *GameSession) spawnNext() {
	k := s.randomizer.Next()
	if !k.Valid() {
		k = KindT
	}
	s.stats.recordSpawn(k)

	piece, err := Spawn(k, s.field)
	if err != nil {
		s.active = nil
		s.gameOver = true
		return
	}
	s.active = piece
}

// Score returns the accumulated score.
func (s *GameSession) Score() int { return s.score }

// GameOver reports whether a spawn has been blocked.
func (s *GameSession) GameOver() bool { return s.gameOver }

func (s *GameSession) State() State {
	if s.gameOver {
		return GameOver
	}
	return Running
}

// DropInterval returns the gravity period.
func (s *GameSession) DropInterval() time.Duration { return s.dropInterval }

// KickPolicy returns the rotation kick policy in use.
func (s *GameSession) KickPolicy() KickPolicy { return s.kicks }

// Field returns a copy of the settled grid.
func (s *GameSession) Field() [][]Cell { return s.field.Rows() }

// Active returns a copy of the falling piece, or nil once the game is over.
func (s *GameSession) Active() *ActivePiece { return s.active.Clone() }

// Stats returns a copy of the session statistics.
func (s *GameSession) Stats() StatsSnapshot { return s.stats.CollectStats() }

// Snapshot copies everything a renderer needs.
func (s *GameSession) Snapshot() Snapshot {
	snap := Snapshot{
		Field:    s.field.Rows(),
		Active:   s.active.Clone(),
		Score:    s.score,
		State:    s.State(),
		GameOver: s.gameOver,
		Stats:    s.stats.CollectStats(),
	}
	if s.active != nil {
		snap.GhostY = s.active.LandingY(s.field)
	}
	return snap
}
