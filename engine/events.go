package engine

// SettleEvent describes one settlement: the piece that merged, the rows the
// sweep removed and the session state right after the next spawn attempt.
type SettleEvent struct {
	Kind Kind
	Pos  Position
	// Rows holds the field index of each cleared row in the order the sweep
	// found it.
	Rows     []int
	Cleared  int
	Points   int
	Score    int
	GameOver bool
}

// Listener is notified synchronously, on the session's goroutine, after every
// settlement.
type Listener interface {
	OnSettle(ev SettleEvent)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(ev SettleEvent)

func (f ListenerFunc) OnSettle(ev SettleEvent) {
	f(ev)
}
