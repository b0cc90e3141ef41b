package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes 创建歌曲集合索引。file_id 上的唯一索引让并发写入同一附件时
// 由存储层拒绝重复记录
func CreateIndexes(db Database, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	songCollection := db.Collection(domain.CollectionSong)
	return createIndex(ctx, logger, songCollection, bson.D{{Key: "file_id", Value: 1}}, "file_id_unique", true)
}

func createIndex(ctx context.Context, logger *slog.Logger, collection Collection, keys bson.D, name string, unique bool) error {
	specs, err := collection.Indexes().ListSpecifications(ctx)
	if err != nil {
		// 集合不存在时 ListSpecifications 会失败，直接尝试创建
		logger.Debug("list index specifications failed", slog.String("index", name), slog.Any("error", err))
	}

	// 如果已存在同名索引，跳过创建
	for _, spec := range specs {
		if spec.Name == name {
			logger.Debug("index already exists", slog.String("index", name))
			return nil
		}
	}

	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetUnique(unique),
	}

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("create index %q: %w", name, err)
	}
	logger.Info("index created", slog.String("index", name))
	return nil
}
