package repository

import (
	"context"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"github.com/Super-Badmen-Viper/SongRelay/mongo"
	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
)

type songRepository struct {
	*BaseMongoRepository[domain.Song]
}

func NewSongRepository(db mongo.Database, collection string) domain.SongRepository {
	base := NewBaseMongoRepository[domain.Song](db, collection)
	return &songRepository{BaseMongoRepository: base.(*BaseMongoRepository[domain.Song])}
}

// Create 插入歌曲；唯一索引冲突视为记录已存在
func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	err := r.BaseMongoRepository.Create(ctx, song)
	if driver.IsDuplicateKeyError(err) {
		return domain.ErrSongExists
	}
	return err
}

func (r *songRepository) ExistsByFileID(ctx context.Context, fileID string) (bool, error) {
	return r.ExistsByFilter(ctx, bson.M{"file_id": fileID})
}
