// Package cli wires the tablesd command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/db"
	"github.com/BruksfildServices01/table-reservations/internal/logging"
)

func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tablesd",
		Short:         "Restaurant table reservation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newUserCmd())
	cmd.AddCommand(newSessionsCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runtime is what every subcommand starts from.
type runtime struct {
	cfg *config.Config
	log zerolog.Logger
	db  *gorm.DB
}

func bootstrap(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	gdb, err := db.NewDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(ctx, gdb); err != nil {
		_ = db.Close(gdb)
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &runtime{cfg: cfg, log: log, db: gdb}, nil
}

func (rt *runtime) close() {
	if err := db.Close(rt.db); err != nil {
		rt.log.Warn().Err(err).Msg("close database")
	}
}
