package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubeviz"
	"github.com/seamusw/cubeviz/internal/storage"
	"github.com/seamusw/cubeviz/internal/tui"
)

var (
	viewSide     int
	viewScramble int
	viewSeed     int64
	viewSession  string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive 3D viewer",
	Long: `Open the terminal viewer: a spinning perspective rendering of the
cube drawn with depth-sorted colored squares.

Keys: arrows rotate the view, space toggles spinning, s applies one
random move, S applies ten, x/y/z turn the depth-0 layer (shifted
letters turn the other way), r resets, q quits.

Start from a fresh cube, pre-scramble it with --scramble, or replay a
recorded session with --session.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVar(&viewSide, "side", 3, "Cube side length")
	viewCmd.Flags().IntVar(&viewScramble, "scramble", 0, "Apply this many random moves before starting")
	viewCmd.Flags().Int64Var(&viewSeed, "seed", 0, "RNG seed (0 picks one from the clock)")
	viewCmd.Flags().StringVar(&viewSession, "session", "", "Replay a recorded session id (or \"last\")")
}

func runView(cmd *cobra.Command, args []string) error {
	seed := viewSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	side := viewSide
	var moves []cubeviz.Move

	if viewSession != "" {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		session, err := resolveViewSession(db, viewSession)
		if err != nil {
			return err
		}
		moves, err = db.SessionMoves(session.ID)
		if err != nil {
			return err
		}
		side = session.Side
	} else if viewScramble > 0 {
		rng := rand.New(rand.NewSource(seed))
		moves = cubeviz.Scramble(rng, side, viewScramble)
	}

	return tui.Run(side, seed, moves)
}

func resolveViewSession(db *storage.DB, id string) (*storage.Session, error) {
	if id == "last" {
		return db.LatestSession()
	}
	return db.GetSession(id)
}
