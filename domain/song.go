package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultSongTitle     = "Unknown Title"
	DefaultSongPerformer = "Unknown Artist"
)

// Song 是唯一持久化的实体，由轮询器在发现新音频附件时创建，之后不再修改
type Song struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FileID    string             `bson:"file_id" json:"file_id"`
	ThumbID   string             `bson:"thumb_id" json:"thumb_id"`
	Title     string             `bson:"title" json:"title"`
	Performer string             `bson:"performer" json:"performer"`
	Duration  float64            `bson:"duration" json:"duration"`
}

// NewSongFromAudio maps a platform attachment onto a Song, filling the
// placeholders for missing title and performer.
func NewSongFromAudio(audio *Audio) *Song {
	song := &Song{
		FileID:    audio.FileID,
		ThumbID:   audio.ThumbnailFileID(),
		Title:     audio.Title,
		Performer: audio.Performer,
		Duration:  audio.Duration,
	}
	if song.Title == "" {
		song.Title = DefaultSongTitle
	}
	if song.Performer == "" {
		song.Performer = DefaultSongPerformer
	}
	return song
}

type SongRepository interface {
	BaseRepository[Song]
	ExistsByFileID(ctx context.Context, fileID string) (bool, error)
}

type SongUsecase interface {
	List(ctx context.Context) ([]*Song, error)
	Count(ctx context.Context) (int64, error)
}

// IngestUsecase 将一批更新物化为 Song 记录，并返回推进后的游标
type IngestUsecase interface {
	Ingest(ctx context.Context, offset int64, updates []Update) (int64, []*Song, error)
}

type ProxyUsecase interface {
	Open(ctx context.Context, fileID string) (*FileStream, error)
}
