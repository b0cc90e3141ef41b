package domain

import (
	"context"
	"io"
)

// Update is one event from the Bot API getUpdates feed.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	Audio     *Audio `json:"audio,omitempty"`
}

type Audio struct {
	FileID       string     `json:"file_id"`
	FileUniqueID string     `json:"file_unique_id"`
	Duration     float64    `json:"duration"`
	Performer    string     `json:"performer,omitempty"`
	Title        string     `json:"title,omitempty"`
	MimeType     string     `json:"mime_type,omitempty"`
	FileSize     int64      `json:"file_size,omitempty"`
	Thumbnail    *PhotoSize `json:"thumbnail,omitempty"`
	// Thumb is the pre-6.6 Bot API name of Thumbnail.
	Thumb *PhotoSize `json:"thumb,omitempty"`
}

type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ThumbnailFileID returns the thumbnail file id, or "" when the attachment has none.
func (a *Audio) ThumbnailFileID() string {
	if a.Thumbnail != nil && a.Thumbnail.FileID != "" {
		return a.Thumbnail.FileID
	}
	if a.Thumb != nil {
		return a.Thumb.FileID
	}
	return ""
}

// AudioOf returns the audio attachment carried by the update, if any.
func (u Update) AudioOf() *Audio {
	if u.Message == nil || u.Message.Audio == nil {
		return nil
	}
	return u.Message.Audio
}

// FileStream 是从平台下载地址打开的响应体，调用方负责关闭 Body
type FileStream struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
}

type UpdateSource interface {
	GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error)
}

type FileSource interface {
	GetFilePath(ctx context.Context, fileID string) (string, error)
	Download(ctx context.Context, filePath string) (*FileStream, error)
}
