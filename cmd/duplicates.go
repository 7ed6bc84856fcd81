package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChaseHampton/headstones/internal/duplicates"

	"github.com/spf13/cobra"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "List headstones that share a primary key",
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
		out := cmd.OutOrStdout()
		for _, g := range duplicates.Find(headstones, store.Reference()) {
			indexes := make([]string, len(g.Indexes))
			for i, n := range g.Indexes {
				indexes[i] = strconv.Itoa(n)
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", g.PrimaryKey, strings.Join(indexes, ","), strings.Join(g.SequenceIDs, ","))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)
}
