package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnPosition(t *testing.T) {
	tests := []struct {
		kind engine.Kind
		x    int
	}{
		{engine.KindT, 4},
		{engine.KindJ, 4},
		{engine.KindL, 4},
		{engine.KindO, 4},
		{engine.KindS, 4},
		{engine.KindZ, 4},
		{engine.KindI, 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p, err := engine.Spawn(tt.kind, engine.NewField())
			require.NoError(t, err)
			assert.Equal(t, engine.Position{X: tt.x, Y: 0}, p.Pos)
			assert.Equal(t, tt.kind, p.Kind)
			assert.Equal(t, engine.ShapeFor(tt.kind), p.Shape)
		})
	}
}

func TestSpawnBlocked(t *testing.T) {
	rows := make([][]engine.Cell, engine.FieldHeight)
	for y := range rows {
		rows[y] = emptyRow()
	}
	rows[0][4] = 1
	f, err := engine.NewFieldFromRows(rows)
	require.NoError(t, err)
	before := f.Rows()

	p, err := engine.Spawn(engine.KindO, f)
	assert.Nil(t, p)
	assert.ErrorIs(t, err, engine.ErrSpawnBlocked)
	assert.Equal(t, before, f.Rows())
}

func TestSpawnUnknownKind(t *testing.T) {
	_, err := engine.Spawn(engine.KindNone, engine.NewField())
	assert.ErrorIs(t, err, engine.ErrUnknownKind)
}

func TestOPieceFallsToFloor(t *testing.T) {
	f := engine.NewField()
	p, err := engine.Spawn(engine.KindO, f)
	require.NoError(t, err)
	require.Equal(t, engine.Position{X: 4, Y: 0}, p.Pos)

	assert.True(t, p.TryMove(f, 1))
	assert.Equal(t, engine.Position{X: 5, Y: 0}, p.Pos)

	drops := 0
	for p.SoftDrop(f) == engine.Moved {
		drops++
		require.Less(t, drops, engine.FieldHeight)
	}
	assert.Equal(t, engine.FieldHeight-2, drops)
	assert.Equal(t, engine.Position{X: 5, Y: engine.FieldHeight - 2}, p.Pos)

	f.Merge(p.Shape, p.Pos)
	assert.Equal(t, []string{
		".....44...",
		".....44...",
	}, render(f.Rows(), 2))
}

func TestTryMoveRejectsWalls(t *testing.T) {
	f := engine.NewField()
	p, err := engine.Spawn(engine.KindO, f)
	require.NoError(t, err)

	for p.TryMove(f, -1) {
	}
	assert.Equal(t, 0, p.Pos.X)

	before := p.Clone()
	assert.False(t, p.TryMove(f, -1))
	assert.Equal(t, before, p)

	for p.TryMove(f, 1) {
	}
	assert.Equal(t, engine.FieldWidth-2, p.Pos.X)
}

func TestTryMoveRejectsStack(t *testing.T) {
	f := fieldFrom(t,
		"...1......",
		"...1......",
	)
	p := &engine.ActivePiece{Kind: engine.KindO, Shape: engine.ShapeFor(engine.KindO), Pos: engine.Position{X: 4, Y: 18}}

	before := p.Clone()
	assert.False(t, p.TryMove(f, -1))
	assert.Equal(t, before, p)
	assert.True(t, p.TryMove(f, 1))
}

func TestTryRotateInPlace(t *testing.T) {
	f := engine.NewField()
	p, err := engine.Spawn(engine.KindT, f)
	require.NoError(t, err)

	require.True(t, p.TryRotate(f, 1, engine.AlternatingKicks{}))
	assert.Equal(t, engine.Rotate(engine.ShapeFor(engine.KindT), 1), p.Shape)
	assert.Equal(t, engine.Position{X: 4, Y: 0}, p.Pos)

	for range 3 {
		require.True(t, p.TryRotate(f, 1, engine.AlternatingKicks{}))
	}
	assert.Equal(t, engine.ShapeFor(engine.KindT), p.Shape)
	assert.Equal(t, engine.Position{X: 4, Y: 0}, p.Pos)
}

func TestTryRotateKicksOffWall(t *testing.T) {
	f := engine.NewField()
	p, err := engine.Spawn(engine.KindT, f)
	require.NoError(t, err)

	// Pointing right, the T's left column is empty so it can hug x=-1.
	require.True(t, p.TryRotate(f, 1, engine.AlternatingKicks{}))
	for p.TryMove(f, -1) {
	}
	require.Equal(t, -1, p.Pos.X)

	t.Run("without kicks the rotation is rejected", func(t *testing.T) {
		q := p.Clone()
		before := q.Clone()
		assert.False(t, q.TryRotate(f, 1, engine.NoKicks{}))
		assert.Equal(t, before, q)

		assert.False(t, q.TryRotate(f, 1, nil))
		assert.Equal(t, before, q)
	})

	t.Run("with kicks the piece shifts right", func(t *testing.T) {
		q := p.Clone()
		require.True(t, q.TryRotate(f, 1, engine.AlternatingKicks{}))
		assert.Equal(t, 0, q.Pos.X)
		assert.Equal(t, engine.Rotate(engine.Rotate(engine.ShapeFor(engine.KindT), 1), 1), q.Shape)
	})
}

func TestTryRotateRevertsWhenNoKickFits(t *testing.T) {
	vertical := engine.Rotate(engine.ShapeFor(engine.KindI), 1)
	piece := func() *engine.ActivePiece {
		return &engine.ActivePiece{Kind: engine.KindI, Shape: vertical.Clone(), Pos: engine.Position{X: -2, Y: 10}}
	}

	open := engine.NewField()
	p := piece()
	require.False(t, open.Collides(p.Shape, p.Pos))
	require.True(t, p.TryRotate(open, -1, engine.AlternatingKicks{}))
	assert.Equal(t, engine.Position{X: 0, Y: 10}, p.Pos)

	rows := open.Rows()
	rows[11][3] = 1
	blocked, err := engine.NewFieldFromRows(rows)
	require.NoError(t, err)

	p = piece()
	before := p.Clone()
	assert.False(t, p.TryRotate(blocked, -1, engine.AlternatingKicks{}))
	assert.Equal(t, before, p)
}

func TestHardDrop(t *testing.T) {
	t.Run("falls to the stack", func(t *testing.T) {
		f := fieldFrom(t,
			"....1.....",
			"....1.....",
		)
		p, err := engine.Spawn(engine.KindO, f)
		require.NoError(t, err)

		fallen := p.HardDrop(f)
		assert.Equal(t, 16, fallen)
		assert.Equal(t, engine.Position{X: 4, Y: 16}, p.Pos)
		assert.False(t, f.Collides(p.Shape, p.Pos))
		assert.True(t, f.Collides(p.Shape, engine.Position{X: 4, Y: 17}))
	})

	t.Run("already resting stays put", func(t *testing.T) {
		f := engine.NewField()
		p := &engine.ActivePiece{Kind: engine.KindO, Shape: engine.ShapeFor(engine.KindO), Pos: engine.Position{X: 0, Y: 18}}

		assert.Equal(t, 0, p.HardDrop(f))
		assert.Equal(t, 18, p.Pos.Y)
	})
}

func TestLandingYDoesNotMove(t *testing.T) {
	f := engine.NewField()
	p, err := engine.Spawn(engine.KindI, f)
	require.NoError(t, err)

	assert.Equal(t, 18, p.LandingY(f))
	assert.Equal(t, 0, p.Pos.Y)
}

func TestSoftDropSettlesWithoutMoving(t *testing.T) {
	f := engine.NewField()
	p := &engine.ActivePiece{Kind: engine.KindT, Shape: engine.ShapeFor(engine.KindT), Pos: engine.Position{X: 0, Y: 18}}

	assert.Equal(t, engine.Settled, p.SoftDrop(f))
	assert.Equal(t, 18, p.Pos.Y)
	assert.Equal(t, "settled", engine.Settled.String())
}

func TestKickCandidates(t *testing.T) {
	kicks := engine.AlternatingKicks{}
	assert.Equal(t, []int{1}, kicks.Candidates(2))
	assert.Equal(t, []int{1, -1, 2}, kicks.Candidates(3))
	assert.Equal(t, []int{1, -1, 2}, kicks.Candidates(4))
	assert.Empty(t, engine.NoKicks{}.Candidates(4))
}

func TestKickPolicyByName(t *testing.T) {
	p, err := engine.KickPolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, engine.AlternatingKicks{}, p)

	p, err = engine.KickPolicyByName("none")
	require.NoError(t, err)
	assert.Equal(t, engine.NoKicks{}, p)

	_, err = engine.KickPolicyByName("srs")
	assert.ErrorIs(t, err, engine.ErrInvalidConfig)
}
