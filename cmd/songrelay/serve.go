package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/api/route"
	"github.com/Super-Badmen-Viper/SongRelay/bootstrap"
	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/mongo"
	"github.com/Super-Badmen-Viper/SongRelay/poller"
	"github.com/Super-Badmen-Viper/SongRelay/repository"
	"github.com/Super-Badmen-Viper/SongRelay/telegram"
	"github.com/Super-Badmen-Viper/SongRelay/usecase"
	"github.com/gin-gonic/gin"
	"github.com/mdobak/go-xerrors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the update poller and the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), envFile, cmd)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file loaded before reading the environment")
	cmd.Flags().String("port", "5000", "HTTP listen port (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, envFile string, cmd *cobra.Command) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	app, err := bootstrap.App(ctx, envFile, cmd.Flags(), os.Stdout)
	if err != nil {
		return err
	}
	defer app.CloseDBConnection()

	env := app.Env
	logger := app.Logger
	db := app.Database()

	if err := mongo.CreateIndexes(db, logger); err != nil {
		return err
	}

	bot := telegram.NewClient(env.TelegramAPIBase, env.BotToken, nil)

	var wg sync.WaitGroup
	if env.PollingEnabled() {
		ingest := usecase.NewIngestUsecase(repository.NewSongRepository(db, domain.CollectionSong), env.Timeout())
		p := poller.New(bot, ingest, env.PollTimeout, env.PollInterval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			offset := p.Run(ctx)
			logger.Info("poller stopped", slog.Int64("offset", offset))
		}()
	} else {
		logger.Warn("BOT_TOKEN not set; polling disabled")
	}

	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	route.Setup(route.Options{
		Timeout:        env.Timeout(),
		DB:             db,
		Files:          bot,
		PollingEnabled: env.PollingEnabled(),
		Logger:         logger,
	}, engine)

	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr), slog.String("app_env", env.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		if serveErr != nil {
			logger.Error("server failed", slog.Any("error", xerrors.New(serveErr)))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server shutdown", slog.Any("error", err))
	}

	stop()
	wg.Wait()
	return serveErr
}
