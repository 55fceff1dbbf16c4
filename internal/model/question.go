package model

import (
	"time"
)

type Question struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Caption   string    `gorm:"type:varchar(255);not null" json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Question) TableName() string {
	return "questions"
}
