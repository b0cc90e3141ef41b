package usecase

import (
	"context"
	"fmt"

	"github.com/Super-Badmen-Viper/SongRelay/domain"
)

type proxyUsecase struct {
	files domain.FileSource
}

// NewProxyUsecase resolves file identifiers on every call; download paths
// are short-lived and never cached.
func NewProxyUsecase(files domain.FileSource) domain.ProxyUsecase {
	return &proxyUsecase{files: files}
}

func (uc *proxyUsecase) Open(ctx context.Context, fileID string) (*domain.FileStream, error) {
	if fileID == "" {
		return nil, fmt.Errorf("open: %w: empty file id", domain.ErrFileNotFound)
	}

	filePath, err := uc.files.GetFilePath(ctx, fileID)
	if err != nil {
		return nil, err
	}

	stream, err := uc.files.Download(ctx, filePath)
	if err != nil {
		return nil, err
	}
	return stream, nil
}
