package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	infraRepo "github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

func newSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Refresh token maintenance",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete expired refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.close()

			n, err := ucAuth.NewPruneSessions(infraRepo.NewAuthGormRepository(rt.db)).Execute(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d expired sessions\n", n)
			return nil
		},
	})
	return cmd
}

// runSessionJanitor prunes expired sessions every interval until ctx ends.
func runSessionJanitor(ctx context.Context, prune *ucAuth.PruneSessions, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := prune.Execute(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("session prune failed")
				continue
			}
			if n > 0 {
				log.Info().Int64("pruned", n).Msg("expired sessions removed")
			}
		}
	}
}
