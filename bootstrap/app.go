package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/Super-Badmen-Viper/SongRelay/mongo"
	"github.com/spf13/pflag"
)

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Logger *slog.Logger
}

func App(ctx context.Context, envFile string, flags *pflag.FlagSet, logOutput io.Writer) (*Application, error) {
	env, err := NewEnv(envFile, flags)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(env, logOutput)
	slog.SetDefault(logger)

	client, err := NewMongoDatabase(ctx, env, logger)
	if err != nil {
		return nil, err
	}

	return &Application{
		Env:    env,
		Mongo:  client,
		Logger: logger,
	}, nil
}

func (app *Application) Database() mongo.Database {
	return app.Mongo.Database(app.Env.DBName)
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo, app.Logger)
}
