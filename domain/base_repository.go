package domain

import (
	"context"
)

// BaseRepository 通用Repository接口，提供只增不改的存储操作
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error

	// 查询操作
	GetAll(ctx context.Context) ([]*T, error)
	GetByFilter(ctx context.Context, filter interface{}) ([]*T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 验证和检查
	ExistsByFilter(ctx context.Context, filter interface{}) (bool, error)
}
