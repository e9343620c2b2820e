package engine

// ActivePiece is the falling, player-controlled piece.
type ActivePiece struct {
	Kind  Kind
	Shape Shape
	Pos   Position
}

// DropResult is the outcome of a one-row soft drop.
type DropResult uint8

const (
	Moved DropResult = iota
	Settled
)

func (r DropResult) String() string {
	if r == Settled {
		return "settled"
	}
	return "moved"
}

// Spawn creates a piece of kind k centered at the top of the field. If the
// piece overlaps the field there it returns ErrSpawnBlocked.
func Spawn(k Kind, field *Field) (*ActivePiece, error) {
	shape := ShapeFor(k)
	if shape == nil {
		return nil, ErrUnknownKind
	}

	p := &ActivePiece{
		Kind:  k,
		Shape: shape,
		Pos:   Position{X: FieldWidth/2 - len(shape[0])/2, Y: 0},
	}
	if field.Collides(p.Shape, p.Pos) {
		return nil, ErrSpawnBlocked
	}
	return p, nil
}

// Clone returns an independent copy of p.
func (p *ActivePiece) Clone() *ActivePiece {
	if p == nil {
		return nil
	}
	return &ActivePiece{Kind: p.Kind, Shape: p.Shape.Clone(), Pos: p.Pos}
}

// TryMove shifts the piece horizontally by dx and reports whether it moved.
func (p *ActivePiece) TryMove(field *Field, dx int) bool {
	next := Position{X: p.Pos.X + dx, Y: p.Pos.Y}
	if field.Collides(p.Shape, next) {
		return false
	}
	p.Pos = next
	return true
}

// TryRotate turns the piece a quarter turn (dir > 0 clockwise) and, if that
// collides, tries the offsets offered by kicks. It reports whether the
// rotation was kept. On failure shape and position are unchanged.
func (p *ActivePiece) TryRotate(field *Field, dir int, kicks KickPolicy) bool {
	rotated := Rotate(p.Shape, dir)
	if !field.Collides(rotated, p.Pos) {
		p.Shape = rotated
		return true
	}
	if kicks == nil {
		return false
	}

	for _, dx := range kicks.Candidates(len(rotated[0])) {
		pos := Position{X: p.Pos.X + dx, Y: p.Pos.Y}
		if !field.Collides(rotated, pos) {
			p.Shape = rotated
			p.Pos = pos
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row. When the row below is blocked the
// piece stays put and Settled is returned.
func (p *ActivePiece) SoftDrop(field *Field) DropResult {
	next := Position{X: p.Pos.X, Y: p.Pos.Y + 1}
	if field.Collides(p.Shape, next) {
		return Settled
	}
	p.Pos = next
	return Moved
}

// HardDrop moves the piece to its landing row and returns the number of rows
// it fell. The caller settles the piece afterwards.
func (p *ActivePiece) HardDrop(field *Field) int {
	landing := p.LandingY(field)
	fallen := landing - p.Pos.Y
	p.Pos.Y = landing
	return fallen
}

// LandingY returns the lowest row the piece can reach by falling straight down.
func (p *ActivePiece) LandingY(field *Field) int {
	y := p.Pos.Y
	for !field.Collides(p.Shape, Position{X: p.Pos.X, Y: y + 1}) {
		y++
	}
	return y
}
