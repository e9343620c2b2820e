package engine

// State is the session's lifecycle state.
type State uint8

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// Snapshot is an immutable copy of everything a presentation layer draws.
type Snapshot struct {
	Field [][]Cell
	// Active is nil once the game is over.
	Active *ActivePiece
	// GhostY is the row the active piece would land on after a hard drop.
	GhostY   int
	Score    int
	State    State
	GameOver bool
	Stats    StatsSnapshot
}

// ActiveCells returns the field coordinates of the active piece's occupied
// cells.
func (s Snapshot) ActiveCells() []Position {
	if s.Active == nil {
		return nil
	}
	var out []Position
	s.Active.Shape.cells(func(x, y int, _ Cell) bool {
		out = append(out, Position{X: s.Active.Pos.X + x, Y: s.Active.Pos.Y + y})
		return true
	})
	return out
}

// CellAt composes the field and the active piece: it returns what should be
// drawn at (x, y), and whether that cell belongs to the active piece.
func (s Snapshot) CellAt(x, y int) (c Cell, active bool) {
	if s.Active != nil {
		lx, ly := x-s.Active.Pos.X, y-s.Active.Pos.Y
		if ly >= 0 && ly < len(s.Active.Shape) && lx >= 0 && lx < len(s.Active.Shape[ly]) {
			if v := s.Active.Shape[ly][lx]; v != Empty {
				return v, true
			}
		}
	}
	if y < 0 || y >= len(s.Field) || x < 0 || x >= len(s.Field[y]) {
		return Empty, false
	}
	return s.Field[y][x], false
}

// GhostAt reports whether (x, y) is covered by the landing outline of the
// active piece.
func (s Snapshot) GhostAt(x, y int) bool {
	if s.Active == nil {
		return false
	}
	lx, ly := x-s.Active.Pos.X, y-s.GhostY
	if ly < 0 || ly >= len(s.Active.Shape) || lx < 0 || lx >= len(s.Active.Shape[ly]) {
		return false
	}
	return s.Active.Shape[ly][lx] != Empty
}
