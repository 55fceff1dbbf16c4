package dto

// GotItDTO 完成观看，生成问题
type GotItDTO struct {
	PostID  string `json:"postId" binding:"required"`
	Caption string `json:"caption" binding:"required" validate:"min=1,max=255"`
}

// AnswerQuestionDTO 记录答题得分
type AnswerQuestionDTO struct {
	PostID string  `json:"postId" binding:"required"`
	Score  float64 `json:"score" binding:"required,gt=0"`
}
