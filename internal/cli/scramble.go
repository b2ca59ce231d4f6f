package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubeviz"
)

var (
	scrambleCount int
	scrambleSide  int
	scrambleSeed  int64
	scrambleNotes string
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a uniformly random move sequence for a cube of the given
side length and print it in notation form (Z0, X2', ...), along with
the scrambled cube's unfolded net.

With --save the scramble is recorded as a session in the history
database and can be replayed later with "cubeviz view --session".`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleCount, "count", 25, "Number of moves")
	scrambleCmd.Flags().IntVar(&scrambleSide, "side", 3, "Cube side length")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "RNG seed (0 picks one from the clock)")
	scrambleCmd.Flags().StringVar(&scrambleNotes, "notes", "", "Notes to store with the session")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble in the history database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cube, err := cubeviz.New(scrambleSide)
	if err != nil {
		return err
	}
	moves := cubeviz.Scramble(rng, scrambleSide, scrambleCount)
	scrambled, err := cube.Apply(moves...)
	if err != nil {
		return fmt.Errorf("applying scramble: %w", err)
	}

	fmt.Printf("Seed: %d\n", seed)
	fmt.Printf("Scramble: %s\n\n", cubeviz.FormatMoves(moves))
	fmt.Println(scrambled)

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		session, err := db.CreateSession(scrambleSide, seed, scrambleNotes, moves)
		if err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
		fmt.Printf("Saved session %s\n", session.ID)
	}
	return nil
}
