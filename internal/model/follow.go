package model

import "time"

type Follow struct {
	FollowerID  string    `gorm:"primaryKey;type:varchar(36)" json:"followerId"`
	FollowingID string    `gorm:"primaryKey;type:varchar(36);index:idx_following_id" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
