package cli

import (
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/table-reservations/internal/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			if err := db.Migrate(rt.db); err != nil {
				return err
			}
			rt.log.Info().Msg("schema up to date")
			return nil
		},
	}
}
