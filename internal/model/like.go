package model

import (
	"time"
)

type Like struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)" json:"userId"`
	VideoID   string    `gorm:"primaryKey;type:varchar(36);index:idx_video_id" json:"videoId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
