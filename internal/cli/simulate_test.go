package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackfall/stackfall/pkg/grid"
)

// quietLogger returns a logger that captures output instead of writing to
// the test's stderr.
func quietLogger() *log.Logger {
	return newLogger(&bytes.Buffer{}, log.InfoLevel)
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name    string
		sc      scenario
		wantErr bool
	}{
		{"Valid", scenario{Rows: 20, Cols: 10, Count: 5}, false},
		{"ValidWithPieces", scenario{Rows: 5, Cols: 5, Pieces: []string{"I"}}, false},
		{"ZeroRows", scenario{Rows: 0, Cols: 10, Count: 5}, true},
		{"ZeroCols", scenario{Rows: 10, Cols: 0, Count: 5}, true},
		{"NothingToDrop", scenario{Rows: 10, Cols: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sc.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows = 8
cols = 6
seed = 3
pieces = ["I", "O", "T"]
spin = true
`), 0o644))

	sc, err := loadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 8, sc.Rows)
	assert.Equal(t, 6, sc.Cols)
	assert.Equal(t, int64(3), sc.Seed)
	assert.Equal(t, []string{"I", "O", "T"}, sc.Pieces)
	assert.True(t, sc.Spin)
}

func TestLoadScenarioErrors(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows = [nope"), 0o644))
	_, err = loadScenario(path)
	assert.Error(t, err)
}

func TestRunScenarioPlacesEveryPiece(t *testing.T) {
	// Each piece has four cells, so a run that never tops out occupies
	// exactly 4*placed cells.
	res, err := runScenario(quietLogger(), scenario{
		Rows:   20,
		Cols:   10,
		Seed:   7,
		Pieces: []string{"I", "J", "L", "O", "S", "T", "Z"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, res.placed)
	assert.False(t, res.toppedOut)
	assert.Equal(t, 28, res.board.CountSet())
}

func TestRunScenarioIsDeterministic(t *testing.T) {
	sc := scenario{Rows: 12, Cols: 8, Seed: 42, Count: 10, Spin: true}

	a, err := runScenario(quietLogger(), sc)
	require.NoError(t, err)
	b, err := runScenario(quietLogger(), sc)
	require.NoError(t, err)

	assert.Equal(t, a.placed, b.placed)
	assert.True(t, a.board.Equal(b.board), "same seed must yield the same board")
}

func TestRunScenarioStacksOnBottom(t *testing.T) {
	// A single O on an empty board must come to rest in the bottom two
	// rows.
	res, err := runScenario(quietLogger(), scenario{
		Rows:   6,
		Cols:   2,
		Pieces: []string{"O"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, res.placed)

	for r := 0; r < 4; r++ {
		for c := 0; c < 2; c++ {
			cell, ok := res.board.At(grid.Coord(r, c))
			require.True(t, ok)
			assert.Equal(t, grid.Off, cell, "row %d must stay empty", r)
		}
	}
	assert.Equal(t, 4, res.board.CountSet())
}

func TestRunScenarioTopsOut(t *testing.T) {
	// A 2-wide board fits three O pieces (6 rows); the fourth has no room.
	res, err := runScenario(quietLogger(), scenario{
		Rows:   6,
		Cols:   2,
		Pieces: []string{"O", "O", "O", "O"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.placed)
	assert.True(t, res.toppedOut)
	assert.Equal(t, 12, res.board.CountSet())
}

func TestRunScenarioPieceWiderThanBoard(t *testing.T) {
	res, err := runScenario(quietLogger(), scenario{
		Rows:   6,
		Cols:   2,
		Pieces: []string{"I"},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, res.placed)
	assert.True(t, res.toppedOut)
}

func TestRunScenarioBadPieceName(t *testing.T) {
	_, err := runScenario(quietLogger(), scenario{
		Rows:   6,
		Cols:   6,
		Pieces: []string{"Q"},
	})
	assert.Error(t, err)
}
