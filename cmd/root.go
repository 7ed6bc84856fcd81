package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChaseHampton/headstones/internal/config"
	"github.com/ChaseHampton/headstones/internal/db"
	"github.com/ChaseHampton/headstones/internal/logging"
	"github.com/ChaseHampton/headstones/internal/record"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dir     string
	driver  string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "headstones",
	Short: "Review and correct extracted headstone records",
	Long: `headstones reads the Master table of an extraction datastore, one headstone
per row, and lets a reviewer page through, correct and export the records.

The datastore is a sqlite file found by suffix in --dir, or a SQL Server or
Postgres database selected with --driver and the DB_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.NewConfig()
		if cmd.Flags().Changed("dir") {
			cfg.Db.Dir = dir
		}
		if cmd.Flags().Changed("driver") {
			cfg.Db.Driver = driver
		}

		var err error
		logger, err = logging.New(cfg.Log.Level, verbose, cfg.Log.File)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "Directory holding the sqlite datastore (DB_DIR)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", config.DriverSQLite, "Datastore driver: sqlite, sqlserver or postgres (DB_DRIVER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level")
}

func openStore(ctx context.Context) (*db.Store, error) {
	store, err := db.Open(ctx, cfg.Db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return store, nil
}

func readAll(ctx context.Context, store *db.Store) ([]*record.Headstone, error) {
	out := make([]*record.Headstone, 0, store.RecordCount())
	for index := 1; index <= store.RecordCount(); index++ {
		h, err := store.ReadRecord(ctx, index)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
