package engine

// Cell is one square of the field or of a piece shape: 0 is empty, otherwise
// the Kind that occupies it.
type Cell uint8

// Empty is the zero Cell.
const Empty Cell = 0

// Shape is a square grid of cells describing a piece in one orientation.
type Shape [][]Cell

var templates = map[Kind]Shape{
	KindT: {
		{0, 1, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	KindJ: {
		{2, 0, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 3},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindO: {
		{4, 4},
		{4, 4},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindZ: {
		{6, 6, 0},
		{0, 6, 6},
		{0, 0, 0},
	},
	KindI: {
		{0, 0, 0, 0},
		{7, 7, 7, 7},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

// ShapeFor returns a fresh copy of the spawn orientation of k.
// It returns nil for an invalid kind.
func ShapeFor(k Kind) Shape {
	t, ok := templates[k]
	if !ok {
		return nil
	}
	return t.Clone()
}

// Size is the side length of the shape's square grid.
func (s Shape) Size() int {
	return len(s)
}

// Clone returns a deep copy of s.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = make([]Cell, len(row))
		copy(out[y], row)
	}
	return out
}

// Equal reports whether s and other have identical dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(other[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns s turned a quarter turn: clockwise when dir > 0, otherwise
// counter-clockwise. s is not modified.
func Rotate(s Shape, dir int) Shape {
	size := len(s)
	rotated := make(Shape, size)
	for i := range rotated {
		rotated[i] = make([]Cell, size)
	}

	for y := range size {
		for x := range size {
			if x >= len(s[y]) {
				continue
			}
			if dir > 0 {
				rotated[x][size-1-y] = s[y][x]
			} else {
				rotated[size-1-x][y] = s[y][x]
			}
		}
	}

	return rotated
}

// cells calls fn for every occupied cell of s with its offset inside the grid.
func (s Shape) cells(fn func(x, y int, c Cell) bool) {
	for y, row := range s {
		for x, c := range row {
			if c == Empty {
				continue
			}
			if !fn(x, y, c) {
				return
			}
		}
	}
}
