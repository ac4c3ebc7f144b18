package cli

import (
	"fmt"
	"math/rand"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stackfall/stackfall/pkg/grid"
	"github.com/stackfall/stackfall/pkg/tetromino"
)

// scenario describes one headless simulation run. It is filled from flags
// or decoded from a TOML file.
type scenario struct {
	Rows   int      `toml:"rows"`
	Cols   int      `toml:"cols"`
	Seed   int64    `toml:"seed"`
	Count  int      `toml:"count"`
	Pieces []string `toml:"pieces"`
	Spin   bool     `toml:"spin"`
}

// validate rejects scenarios the engine cannot host.
func (sc scenario) validate() error {
	if sc.Rows < 1 || sc.Cols < 1 {
		return fmt.Errorf("board must be at least 1x1, got %dx%d", sc.Rows, sc.Cols)
	}
	if len(sc.Pieces) == 0 && sc.Count < 1 {
		return fmt.Errorf("nothing to drop: give a piece sequence or a count")
	}
	return nil
}

// sequence resolves the scenario's piece sequence: the explicit list when
// given, otherwise Count pieces drawn from rng.
func (sc scenario) sequence(rng *rand.Rand) ([]tetromino.Shape, error) {
	if len(sc.Pieces) > 0 {
		shapes := make([]tetromino.Shape, 0, len(sc.Pieces))
		for _, name := range sc.Pieces {
			shape, err := tetromino.ParseShape(name)
			if err != nil {
				return nil, err
			}
			shapes = append(shapes, shape)
		}
		return shapes, nil
	}
	all := tetromino.Shapes()
	shapes := make([]tetromino.Shape, sc.Count)
	for i := range shapes {
		shapes[i] = all[rng.Intn(len(all))]
	}
	return shapes, nil
}

// loadScenario decodes a scenario from a TOML file.
func loadScenario(path string) (scenario, error) {
	var sc scenario
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return scenario{}, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	return sc, nil
}

// simResult is the outcome of a simulation run.
type simResult struct {
	board     *grid.Grid[grid.Bit]
	placed    int
	toppedOut bool
}

// runScenario drops the scenario's pieces onto a fresh board, one at a
// time. Each piece spawns in the top row at a random column, falls one row
// per tick while the next row is neither past the bottom nor colliding,
// then locks into the board. The run ends when the sequence is exhausted or
// a spawned piece has no room (top-out).
func runScenario(logger *log.Logger, sc scenario) (*simResult, error) {
	board := grid.New(grid.Coord(sc.Rows, sc.Cols), grid.Off)
	rng := rand.New(rand.NewSource(sc.Seed))

	shapes, err := sc.sequence(rng)
	if err != nil {
		return nil, err
	}

	res := &simResult{board: board}
	for _, shape := range shapes {
		piece, err := tetromino.NewBit(shape)
		if err != nil {
			return nil, err
		}
		if sc.Spin {
			for turns := rng.Intn(4); turns > 0; turns-- {
				piece.RotateCW()
			}
		}

		span := sc.Cols - piece.Extent().Col
		if span < 0 {
			logger.Debug("piece wider than board", "shape", shape, "extent", piece.Extent())
			res.toppedOut = true
			break
		}
		at := grid.Coord(0, rng.Intn(span+1))

		if !tetromino.InBounds(at, board, piece) || tetromino.Hits(at, board, piece) {
			logger.Debug("spawn blocked", "shape", shape, "at", at)
			res.toppedOut = true
			break
		}

		for !tetromino.ReachedBottom(at, board, piece) && !tetromino.Hits(at.Offset(1, 0), board, piece) {
			at = at.Offset(1, 0)
		}
		if err := tetromino.Place(board, piece, at); err != nil {
			return nil, fmt.Errorf("lock %s at %s: %w", shape, at, err)
		}

		res.placed++
		logger.Debug("piece locked", "shape", shape, "at", at, "rotation", piece.Rotation())
	}
	return res, nil
}

// newSimulateCmd creates the simulate command, a headless reference driver
// for the engine.
func newSimulateCmd() *cobra.Command {
	var (
		scenarioPath string
		sc           scenario
		piecesCSV    []string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drop pieces onto a fresh board and print the result (debug tool)",
		Long: `Run a headless gravity simulation: pieces spawn in the top row at random
columns, fall one row per tick until they reach the bottom or land on the
stack, and lock in place. The run stops when the sequence is exhausted or a
spawned piece has no room.

The board, seed and piece sequence come from flags, or from a TOML scenario
file, which takes precedence:

  rows = 20
  cols = 10
  seed = 7
  count = 12
  pieces = ["I", "J"]   # explicit sequence; overrides count
  spin = true           # random pre-rotation per piece`,
		Example: `  # Twelve random pieces on a 20x10 board
  stackfall simulate --rows 20 --cols 10 --count 12 --seed 7

  # A fixed sequence with random rotations
  stackfall simulate --pieces I,J,L,O --spin

  # From a scenario file
  stackfall simulate --scenario endgame.toml -v`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if scenarioPath != "" {
				loaded, err := loadScenario(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			} else {
				sc.Pieces = piecesCSV
			}
			if err := sc.validate(); err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := runScenario(logger, sc)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Placed %d pieces", res.placed))

			fmt.Println(renderBoard(res.board))
			printKeyValue("Board", fmt.Sprintf("%dx%d", sc.Rows, sc.Cols))
			printKeyValue("Placed", res.placed)
			printKeyValue("Occupied cells", res.board.CountSet())
			if res.toppedOut {
				printKeyValue("Topped out", true)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "TOML scenario file (overrides other flags)")
	cmd.Flags().IntVar(&sc.Rows, "rows", 20, "board height")
	cmd.Flags().IntVar(&sc.Cols, "cols", 10, "board width")
	cmd.Flags().Int64Var(&sc.Seed, "seed", 0, "random seed for columns, pieces and rotations")
	cmd.Flags().IntVar(&sc.Count, "count", 10, "number of random pieces when no sequence is given")
	cmd.Flags().StringSliceVar(&piecesCSV, "pieces", nil, "comma-separated piece sequence (e.g. I,J,L)")
	cmd.Flags().BoolVar(&sc.Spin, "spin", false, "apply a random rotation to each piece before dropping")

	return cmd
}
