package es

import "time"

// PostES 写入 ES 的帖子文档
type PostES struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Caption     string    `json:"caption"`
	VideoURL    string    `json:"video_url"`
	CoverURL    string    `json:"cover_url"`
	VideoWidth  int       `json:"video_width"`
	VideoHeight int       `json:"video_height"`
	CreatedAt   time.Time `json:"created_at"`
}
