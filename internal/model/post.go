package model

import (
	"time"
)

type Post struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Caption     string    `gorm:"type:varchar(255);not null" json:"caption"`
	VideoURL    string    `gorm:"type:varchar(512);not null" json:"videoURL"`
	CoverURL    string    `gorm:"type:varchar(512);not null" json:"coverURL"`
	VideoWidth  int       `gorm:"not null" json:"videoWidth"`
	VideoHeight int       `gorm:"not null" json:"videoHeight"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
