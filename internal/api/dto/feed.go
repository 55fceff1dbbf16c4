package dto

// FeedQueryDTO Feed 查询参数，cursor 为裸偏移量
type FeedQueryDTO struct {
	Cursor *int `form:"cursor" binding:"omitempty,min=0"`
}

// FeedItemDTO Feed 条目：Video 及其关联与两个派生标记
type FeedItemDTO struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	PostID     string   `json:"postId"`
	QuestionID *string  `json:"questionId"`
	Done       bool     `json:"done"`
	Score      *float64 `json:"score"`
	LikesCount int      `json:"likesCount"`
	CreatedAt  string   `json:"createdAt"`

	User     *UserDTO     `json:"user"`
	Post     *PostDTO     `json:"post"`
	Question *QuestionDTO `json:"question,omitempty"`

	LikedByMe    bool `json:"likedByMe"`
	FollowedByMe bool `json:"followedByMe"`
}

// FeedPageDTO nextSkip 为空表示已到末尾
type FeedPageDTO struct {
	Items    []*FeedItemDTO `json:"items"`
	NextSkip *int           `json:"nextSkip"`
}

type UserDTO struct {
	ID    string  `json:"id"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type QuestionDTO struct {
	ID      string `json:"id"`
	Caption string `json:"caption"`
}
