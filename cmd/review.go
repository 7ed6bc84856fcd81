package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ChaseHampton/headstones/internal/page"
	"github.com/ChaseHampton/headstones/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Page through headstone records in the terminal",
	Long: `Open every record as a review page. Use the arrow keys (or h/l, p/n) to
move, s to save the current page, q to quit.

The review screen does not edit fields. Correct a record through the serve
API with PUT /api/headstones/<index>, then review it again here.

Set LOG_FILE to keep log output off the review screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		headstones, err := readAll(cmd.Context(), store)
		if err != nil {
			return err
		}
		pages := make([]page.Page, len(headstones))
		for i, h := range headstones {
			name := h.Image1FileName
			if name == "" {
				name = filepath.Base(store.Source())
			}
			pages[i] = page.Page{FileName: name, PageNumber: i + 1, Headstone: h}
		}

		reviewer := page.NewReviewer(logger)
		if err := reviewer.LoadPages(pages); err != nil {
			return fmt.Errorf("nothing to review: %w", err)
		}

		_, err = tea.NewProgram(tui.New(reviewer, store), tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
