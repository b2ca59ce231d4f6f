package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubeviz"
	"github.com/seamusw/cubeviz/internal/storage"
)

var (
	historyLimit    int
	historyShowLast bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scramble sessions",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [session-id]",
	Short: "Show a session's moves and resulting cube",
	Long: `Display a recorded session: its metadata, the full move sequence,
and the cube net after applying it. Use --last for the most recent
session.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of sessions to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyShowLast, "last", false, "Show the most recent session")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	sessions, err := db.ListSessions(historyLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded. Create one with: cubeviz scramble --save")
		return nil
	}

	fmt.Printf("%-36s  %-5s  %-6s  %s\n", "ID", "SIDE", "MOVES", "CREATED")
	for _, s := range sessions {
		fmt.Printf("%-36s  %-5d  %-6d  %s\n",
			s.ID, s.Side, s.MoveCount, s.CreatedAt.Local().Format(time.RFC1123))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	session, err := resolveSession(db, args)
	if err != nil {
		return err
	}

	moves, err := db.SessionMoves(session.ID)
	if err != nil {
		return err
	}

	cube, err := cubeviz.New(session.Side)
	if err != nil {
		return err
	}
	result, err := cube.Apply(moves...)
	if err != nil {
		return fmt.Errorf("replaying session moves: %w", err)
	}

	fmt.Printf("Session:  %s\n", session.ID)
	fmt.Printf("Created:  %s\n", session.CreatedAt.Local().Format(time.RFC1123))
	fmt.Printf("Side:     %d\n", session.Side)
	fmt.Printf("Seed:     %d\n", session.Seed)
	if session.Notes != "" {
		fmt.Printf("Notes:    %s\n", session.Notes)
	}
	fmt.Printf("Moves:    %s\n\n", cubeviz.FormatMoves(moves))
	fmt.Println(result)
	return nil
}

// resolveSession picks the session from the argument or --last.
func resolveSession(db *storage.DB, args []string) (*storage.Session, error) {
	if historyShowLast {
		return db.LatestSession()
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("expected a session id or --last")
	}
	return db.GetSession(args[0])
}
