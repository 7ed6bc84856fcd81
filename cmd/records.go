package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var showFormat string

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of headstone records",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		fmt.Fprintln(cmd.OutOrStdout(), store.RecordCount())
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Print one headstone record",
	Long: `Print the headstone at a 1-based position, counting records in
SequenceID order.

Examples:
  headstones show 1
  headstones show 12 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		h, err := store.ReadRecord(cmd.Context(), index)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch showFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(h)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(h); err != nil {
				return err
			}
			return enc.Close()
		default:
			return fmt.Errorf("unknown format %q, use yaml or json", showFormat)
		}
	},
}

var gravesiteCmd = &cobra.Command{
	Use:   "gravesite <index>",
	Short: "Print the gravesite number of one headstone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}

		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		gravesite, err := store.GravesiteNumber(cmd.Context(), index)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gravesite)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd, showCmd, gravesiteCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "Output format: yaml or json")
}
