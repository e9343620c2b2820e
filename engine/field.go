package engine

import "fmt"

const (
	FieldWidth  = 10
	FieldHeight = 20
)

// Position is a top-left offset into field coordinates. Y grows downward.
type Position struct {
	X, Y int
}

// Field is the grid of settled cells. Row 0 is the top.
type Field struct {
	rows [][]Cell
}

// NewField creates an empty FieldWidth x FieldHeight field.
func NewField() *Field {
	f := &Field{rows: make([][]Cell, FieldHeight)}
	for y := range f.rows {
		f.rows[y] = make([]Cell, FieldWidth)
	}
	return f
}

// NewFieldFromRows builds a field from a full set of rows. Every row must be
// FieldWidth wide, there must be FieldHeight of them, and every cell must be
// empty or a valid kind.
func NewFieldFromRows(rows [][]Cell) (*Field, error) {
	if len(rows) != FieldHeight {
		return nil, fmt.Errorf("%w: want %d rows, got %d", ErrInvalidField, FieldHeight, len(rows))
	}

	f := &Field{rows: make([][]Cell, FieldHeight)}
	for y, row := range rows {
		if len(row) != FieldWidth {
			return nil, fmt.Errorf("%w: row %d is %d wide, want %d", ErrInvalidField, y, len(row), FieldWidth)
		}
		for x, c := range row {
			if c != Empty && !Kind(c).Valid() {
				return nil, fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidField, x, y, c)
			}
		}
		f.rows[y] = make([]Cell, FieldWidth)
		copy(f.rows[y], row)
	}
	return f, nil
}

// Width returns the number of columns.
func (f *Field) Width() int { return FieldWidth }

// Height returns the number of rows.
func (f *Field) Height() int { return len(f.rows) }

// At returns the cell at (x, y). ok is false when the coordinate lies outside
// the field.
func (f *Field) At(x, y int) (c Cell, ok bool) {
	if y < 0 || y >= len(f.rows) || x < 0 || x >= len(f.rows[y]) {
		return Empty, false
	}
	return f.rows[y][x], true
}

// Rows returns a deep copy of the grid.
func (f *Field) Rows() [][]Cell {
	out := make([][]Cell, len(f.rows))
	for y, row := range f.rows {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	return out
}

// Clear empties every cell.
func (f *Field) Clear() {
	for _, row := range f.rows {
		clear(row)
	}
}

// Collides reports whether shape placed at pos touches a side wall, reaches
// the floor, or overlaps a settled cell. Cells above the top edge only count
// against the side walls.
func (f *Field) Collides(shape Shape, pos Position) bool {
	hit := false
	shape.cells(func(x, y int, _ Cell) bool {
		fx, fy := pos.X+x, pos.Y+y
		if fx < 0 || fx >= FieldWidth || fy >= len(f.rows) {
			hit = true
			return false
		}
		if fy < 0 {
			return true
		}
		if f.rows[fy][fx] != Empty {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// Merge writes the occupied cells of shape at pos into the field. It does not
// check for overlap; callers settle a piece only at a position that does not
// collide. Cells falling outside the grid are dropped.
func (f *Field) Merge(shape Shape, pos Position) {
	shape.cells(func(x, y int, c Cell) bool {
		fx, fy := pos.X+x, pos.Y+y
		if fy >= 0 && fy < len(f.rows) && fx >= 0 && fx < FieldWidth {
			f.rows[fy][fx] = c
		}
		return true
	})
}

// Sweep removes every complete row, scanning from the bottom up, and returns
// the index at which each one was found in discovery order. Rows above a
// removed row shift down by one and an empty row enters at the top, so the
// same index is examined again before moving up.
func (f *Field) Sweep() []int {
	var found []int
	for y := len(f.rows) - 1; y >= 0; {
		if !f.rowComplete(y) {
			y--
			continue
		}

		found = append(found, y)
		removed := f.rows[y]
		copy(f.rows[1:y+1], f.rows[:y])
		clear(removed)
		f.rows[0] = removed
	}
	return found
}

// SweepCompletedRows clears complete rows and returns how many were removed.
func (f *Field) SweepCompletedRows() int {
	return len(f.Sweep())
}

func (f *Field) rowComplete(y int) bool {
	for _, c := range f.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}
