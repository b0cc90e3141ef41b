package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/mongo"
)

func NewMongoDatabase(ctx context.Context, env *Env, logger *slog.Logger) (mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.NewClient(env.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("MongoDB connected", slog.String("database", env.DBName))
	return client, nil
}

func CloseMongoDBConnection(client mongo.Client, logger *slog.Logger) {
	if client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Disconnect(ctx); err != nil {
		logger.Error("close MongoDB connection", slog.Any("error", err))
		return
	}
	logger.Info("connection to MongoDB closed")
}
