package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSongFromAudio(t *testing.T) {
	song := NewSongFromAudio(&Audio{
		FileID:    "A",
		Title:     "T",
		Performer: "P",
		Duration:  120,
		Thumbnail: &PhotoSize{FileID: "TH"},
	})

	assert.True(t, song.ID.IsZero())
	assert.Equal(t, "A", song.FileID)
	assert.Equal(t, "TH", song.ThumbID)
	assert.Equal(t, "T", song.Title)
	assert.Equal(t, "P", song.Performer)
	assert.Equal(t, float64(120), song.Duration)
}

func TestNewSongFromAudioPlaceholders(t *testing.T) {
	song := NewSongFromAudio(&Audio{FileID: "B", Duration: 30})

	assert.Equal(t, DefaultSongTitle, song.Title)
	assert.Equal(t, DefaultSongPerformer, song.Performer)
	assert.Equal(t, "", song.ThumbID)
}

func TestThumbnailFileID(t *testing.T) {
	tests := []struct {
		name  string
		audio Audio
		want  string
	}{
		{"none", Audio{}, ""},
		{"thumbnail", Audio{Thumbnail: &PhotoSize{FileID: "new"}}, "new"},
		{"legacy thumb", Audio{Thumb: &PhotoSize{FileID: "old"}}, "old"},
		{"thumbnail wins", Audio{Thumbnail: &PhotoSize{FileID: "new"}, Thumb: &PhotoSize{FileID: "old"}}, "new"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.audio.ThumbnailFileID())
		})
	}
}

func TestAudioOf(t *testing.T) {
	assert.Nil(t, Update{UpdateID: 1}.AudioOf())
	assert.Nil(t, Update{UpdateID: 2, Message: &Message{MessageID: 5}}.AudioOf())

	audio := &Audio{FileID: "A"}
	assert.Same(t, audio, Update{UpdateID: 3, Message: &Message{Audio: audio}}.AudioOf())
}
