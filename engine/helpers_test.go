package engine_test

import (
	"strings"
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/require"
)

// fieldFrom builds a field whose bottom rows are given as strings, top first.
// '.' is empty and '1'..'7' is a kind id. Missing rows above are empty.
func fieldFrom(t *testing.T, lines ...string) *engine.Field {
	t.Helper()
	require.LessOrEqual(t, len(lines), engine.FieldHeight)

	rows := make([][]engine.Cell, engine.FieldHeight)
	for y := range rows {
		rows[y] = make([]engine.Cell, engine.FieldWidth)
	}

	offset := engine.FieldHeight - len(lines)
	for i, line := range lines {
		require.Len(t, line, engine.FieldWidth, "row %d", i)
		for x, ch := range line {
			if ch != '.' {
				rows[offset+i][x] = engine.Cell(ch - '0')
			}
		}
	}

	f, err := engine.NewFieldFromRows(rows)
	require.NoError(t, err)
	return f
}

// render prints the bottom n rows of a grid in the fieldFrom format.
func render(rows [][]engine.Cell, n int) []string {
	out := make([]string, 0, n)
	for _, row := range rows[len(rows)-n:] {
		var b strings.Builder
		for _, c := range row {
			if c == engine.Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + c))
			}
		}
		out = append(out, b.String())
	}
	return out
}

func emptyRow() []engine.Cell {
	return make([]engine.Cell, engine.FieldWidth)
}
