package model

import (
	"time"
)

// Video 一条 Feed 记录，(user_id, post_id) 唯一键 video_identifier 保证幂等创建
type Video struct {
	ID         string   `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID     string   `gorm:"type:varchar(36);not null;uniqueIndex:video_identifier,priority:1" json:"userId"`
	PostID     string   `gorm:"type:varchar(36);not null;uniqueIndex:video_identifier,priority:2" json:"postId"`
	QuestionID *string  `gorm:"type:varchar(36)" json:"questionId"`
	Done       bool     `gorm:"type:tinyint(1);not null;default:0" json:"done"`
	Score      *float64 `json:"score"`
	LikesCount int      `gorm:"not null;default:0" json:"likesCount"`
	CreatedAt  time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// 关联关系
	User     User      `gorm:"foreignKey:UserID;references:ID" json:"user"`
	Post     Post      `gorm:"foreignKey:PostID;references:ID" json:"post"`
	Question *Question `gorm:"foreignKey:QuestionID;references:ID" json:"question"`
}

func (Video) TableName() string {
	return "videos"
}
