package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/picovaders/internal/storage"
)

var (
	flagLimit  int
	flagDelete bool
)

var framesCmd = &cobra.Command{
	Use:   "frames [session]",
	Short: "Show recorded frame-log sessions",
	Long: `List the sessions recorded in the frame log, or show frame timing
statistics for one session.

Sessions are recorded by play, gui and serve when --db is set.

Examples:
  vaders frames --db ~/.picovaders/frames.db
  vaders frames 3 --db ~/.picovaders/frames.db
  vaders frames 3 --delete --db ~/.picovaders/frames.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFrames,
}

func init() {
	framesCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to list")
	framesCmd.Flags().BoolVar(&flagDelete, "delete", false, "Delete the given session instead of showing it")
}

func runFrames(_ *cobra.Command, args []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --db is required")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening frame log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		id, parseErr := strconv.ParseInt(args[0], 10, 64)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid session id %q\n", args[0])
			os.Exit(1)
		}
		if flagDelete {
			if err := store.DeleteSession(id); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Deleted session %d\n", id)
			return
		}
		if err := printStats(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.Sessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'vaders play --db <path>' to record one.")
		return
	}
	fmt.Println(sessionTable(sessions))
}

// sessionTable renders sessions as a static table.
func sessionTable(sessions []storage.SessionEntry) string {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Frontend", Width: 8},
		{Title: "User", Width: 12},
		{Title: "Frames", Width: 8},
		{Title: "Top", Width: 8},
		{Title: "Last", Width: 7},
		{Title: "Started", Width: 16},
	}

	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			strconv.FormatInt(s.ID, 10),
			s.Frontend,
			s.User,
			strconv.Itoa(s.Frames),
			fmt.Sprintf("%06d", s.TopScore),
			s.LastScreen,
			s.StartedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a printed table.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}

func printStats(store *storage.Store, id int64) error {
	stats, err := store.DeltaStats(id)
	if errors.Is(err, storage.ErrNoSession) {
		return fmt.Errorf("no session %d", id)
	}
	if err != nil {
		return err
	}

	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(10)
	fmt.Println(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(fmt.Sprintf("Session %d", id)))
	fmt.Println()
	fmt.Println(label.Render("Frames") + strconv.Itoa(stats.Frames))
	fmt.Println(label.Render("Delta") + fmt.Sprintf("min %dms · max %dms · avg %.1fms", stats.MinMS, stats.MaxMS, stats.AvgMS))
	fmt.Println(label.Render("Played") + fmt.Sprintf("%.1fs", float64(stats.TotalMS)/1000))
	return nil
}
