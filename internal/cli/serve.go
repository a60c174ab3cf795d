package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/table-reservations/internal/audit"
	"github.com/BruksfildServices01/table-reservations/internal/db"
	"github.com/BruksfildServices01/table-reservations/internal/events"
	infraRepo "github.com/BruksfildServices01/table-reservations/internal/infra/repository"
	"github.com/BruksfildServices01/table-reservations/internal/metrics"
	"github.com/BruksfildServices01/table-reservations/internal/middleware"
	"github.com/BruksfildServices01/table-reservations/internal/routes"
	ucAuth "github.com/BruksfildServices01/table-reservations/internal/usecase/auth"
)

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer rt.close()

			cfg, log := rt.cfg, rt.log

			if migrateUp {
				if err := db.Migrate(rt.db); err != nil {
					return err
				}
			}

			// --------------------------------------------------
			// Optional collaborators
			// --------------------------------------------------
			var rdb *redis.Client
			if cfg.Redis.Addr != "" {
				rdb = redis.NewClient(&redis.Options{
					Addr:     cfg.Redis.Addr,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				})
				defer rdb.Close()

				pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
				if err := rdb.Ping(pingCtx).Err(); err != nil {
					log.Warn().Err(err).Msg("redis unreachable, rate limits fail open until it recovers")
				}
				cancel()
			}

			var publisher events.Publisher = events.Nop{}
			if cfg.AMQP.URL != "" {
				publisher = events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
			}
			defer publisher.Close()

			dispatcher := audit.NewDispatcher(audit.New(rt.db), log)
			defer dispatcher.Close()

			if cfg.Metrics.Enabled {
				metrics.Register()
			}

			// --------------------------------------------------
			// HTTP
			// --------------------------------------------------
			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			r := gin.New()
			r.Use(gin.Recovery())
			r.Use(middleware.RequestID())
			r.Use(middleware.RequestLogger(log))

			routes.RegisterRoutes(r, routes.Deps{
				DB:     rt.db,
				Config: cfg,
				Log:    log,
				Audit:  dispatcher,
				Events: publisher,
				Redis:  rdb,
			})

			go runSessionJanitor(
				ctx,
				ucAuth.NewPruneSessions(infraRepo.NewAuthGormRepository(rt.db)),
				cfg.SessionCleanupInterval,
				log,
			)

			srv := &http.Server{
				Addr:              cfg.Addr(),
				Handler:           r,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("http server listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}
