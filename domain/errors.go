package domain

import "errors"

var (
	// ErrSongExists 同一 file_id 已有记录
	ErrSongExists = errors.New("song already exists")
	// ErrFileNotFound 平台拒绝了该文件标识
	ErrFileNotFound = errors.New("file not found on platform")
	// ErrUpstream 平台接口返回非预期结果
	ErrUpstream = errors.New("upstream platform error")
)
