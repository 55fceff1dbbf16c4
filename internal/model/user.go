package model

import (
	"time"
)

type User struct {
	ID        string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      *string `gorm:"type:varchar(50)" json:"name"`
	Email     *string `gorm:"type:varchar(100);uniqueIndex:idx_email" json:"email"`
	Image     *string `gorm:"type:varchar(512)" json:"image"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
