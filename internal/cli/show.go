package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubeviz"
)

var showSide int

var showCmd = &cobra.Command{
	Use:   "show [moves...]",
	Short: "Apply a move sequence and print the cube",
	Long: `Apply a move sequence to a solved cube and print the resulting
unfolded net. Moves use axis/depth notation: Z0 turns the layer at
depth 0 on the z axis, X2' is the inverse turn at depth 2 on x.

With no moves the solved cube is printed.`,
	Example: `  cubeviz show Z0 X2' Y1
  cubeviz show --side 4 X3 X3 X3 X3`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showSide, "side", 3, "Cube side length")
}

func runShow(cmd *cobra.Command, args []string) error {
	cube, err := cubeviz.New(showSide)
	if err != nil {
		return err
	}

	moves, err := cubeviz.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	result, err := cube.Apply(moves...)
	if err != nil {
		return err
	}

	if len(moves) > 0 {
		fmt.Printf("Moves: %s\n\n", cubeviz.FormatMoves(moves))
	}
	fmt.Println(result)
	if result.IsSolved() {
		fmt.Println("Cube is solved.")
	}
	return nil
}
