package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// BaseUsecase 通用只读Usecase接口
type BaseUsecase[T any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	Count(ctx context.Context) (int64, error)
}

// BaseUsecaseImpl 通用Usecase实现，每次调用都限定在 timeout 内
type BaseUsecaseImpl[T any] struct {
	repo    domain.BaseRepository[T]
	timeout time.Duration
}

// NewBaseUsecase 创建通用Usecase实例
func NewBaseUsecase[T any](repo domain.BaseRepository[T], timeout time.Duration) BaseUsecase[T] {
	return &BaseUsecaseImpl[T]{
		repo:    repo,
		timeout: timeout,
	}
}

// GetAll 获取所有实体
func (uc *BaseUsecaseImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	entities, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get entities: %w", err)
	}
	return entities, nil
}

// Count 统计实体数量
func (uc *BaseUsecaseImpl[T]) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	count, err := uc.repo.Count(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return count, nil
}
