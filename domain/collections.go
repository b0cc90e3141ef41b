package domain

const (
	CollectionSong = "songs"
)
