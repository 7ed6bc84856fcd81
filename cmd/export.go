package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ChaseHampton/headstones/internal/config"
	"github.com/ChaseHampton/headstones/internal/db"
	"github.com/ChaseHampton/headstones/internal/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut string
	initName  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every headstone to an xlsx workbook",
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
		if err := export.WriteXLSX(exportOut, headstones); err != nil {
			return err
		}
		logger.Info("export written", zap.String("path", exportOut), zap.Int("records", len(headstones)))
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty sqlite datastore",
	Long: `Create <dir>/<name><suffix> with the Master table and the lookup tables,
ready for an extraction run to fill.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initDatastore(cmd.Context(), cfg.Db, initName)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func initDatastore(ctx context.Context, c config.DbConfig, name string) (string, error) {
	if c.Driver != config.DriverSQLite {
		return "", fmt.Errorf("init only creates sqlite datastores, not %s", c.Driver)
	}
	path := filepath.Join(c.Dir, name+c.FileSuffix)
	if err := db.InitFile(ctx, path); err != nil {
		return "", err
	}
	return path, nil
}

func init() {
	rootCmd.AddCommand(exportCmd, initCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "headstones.xlsx", "Workbook to write")
	initCmd.Flags().StringVar(&initName, "name", "headstones", "Datastore file name, before the suffix")
}
