package script

import "github.com/plus3/blockfall/engine"

// Placement describes the field a piece would leave behind if it were hard
// dropped from a given position.
type Placement struct {
	// Y is the row the piece lands on.
	Y int
	// Cleared is the number of rows the landing would complete.
	Cleared int
	// Height is the sum of column heights after the sweep.
	Height int
	// Holes counts empty cells with a filled cell somewhere above them.
	Holes int
	// Bumpiness is the sum of height differences between neighbouring columns.
	Bumpiness int
}

// Evaluate drops shape from pos onto a copy of field and measures the result.
// It reports false when shape does not fit at pos to begin with.
func Evaluate(field *engine.Field, shape engine.Shape, pos engine.Position) (Placement, bool) {
	if field.Collides(shape, pos) {
		return Placement{}, false
	}
	for !field.Collides(shape, engine.Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}

	trial, err := engine.NewFieldFromRows(field.Rows())
	if err != nil {
		return Placement{}, false
	}
	trial.Merge(shape, pos)
	p := Placement{Y: pos.Y, Cleared: trial.SweepCompletedRows()}

	heights := columnHeights(trial)
	for x, h := range heights {
		p.Height += h
		if x > 0 {
			p.Bumpiness += abs(h - heights[x-1])
		}
	}
	p.Holes = countHoles(trial)
	return p, true
}

// Reach plays the moves that bring piece to column x after the given number
// of clockwise quarter turns, the way a session would: it rotates in place
// (trying kicks) first, then shifts one column at a time at the piece's row.
// It returns those ops followed by a hard drop, and the placement the drop
// leaves. It reports false when a rotation or a shift is blocked on the way.
// piece itself is not modified.
func Reach(field *engine.Field, piece *engine.ActivePiece, kicks engine.KickPolicy, rotations, x int) ([]engine.Op, Placement, bool) {
	if piece == nil || rotations < 0 {
		return nil, Placement{}, false
	}
	p := piece.Clone()
	ops := make([]engine.Op, 0, engine.FieldWidth+4)

	for range rotations % 4 {
		if !p.TryRotate(field, 1, kicks) {
			return nil, Placement{}, false
		}
		ops = append(ops, engine.OpRotateCW)
	}

	for p.Pos.X != x {
		dx, op := 1, engine.OpMoveRight
		if x < p.Pos.X {
			dx, op = -1, engine.OpMoveLeft
		}
		if !p.TryMove(field, dx) {
			return nil, Placement{}, false
		}
		ops = append(ops, op)
	}

	placement, ok := Evaluate(field, p.Shape, p.Pos)
	if !ok {
		return nil, Placement{}, false
	}
	return append(ops, engine.OpHardDrop), placement, true
}

func columnHeights(f *engine.Field) []int {
	heights := make([]int, f.Width())
	for x := range heights {
		for y := 0; y < f.Height(); y++ {
			if c, _ := f.At(x, y); c != engine.Empty {
				heights[x] = f.Height() - y
				break
			}
		}
	}
	return heights
}

func countHoles(f *engine.Field) int {
	holes := 0
	for x := 0; x < f.Width(); x++ {
		covered := false
		for y := 0; y < f.Height(); y++ {
			c, _ := f.At(x, y)
			switch {
			case c != engine.Empty:
				covered = true
			case covered:
				holes++
			}
		}
	}
	return holes
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
