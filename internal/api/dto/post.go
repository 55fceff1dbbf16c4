package dto

// PostDTO 帖子
type PostDTO struct {
	ID          string `json:"id"`
	Caption     string `json:"caption"`
	VideoURL    string `json:"videoURL"`
	CoverURL    string `json:"coverURL"`
	VideoWidth  int    `json:"videoWidth"`
	VideoHeight int    `json:"videoHeight"`
	CreatedAt   string `json:"createdAt"`
}

// CreatePostDTO 发布帖子
type CreatePostDTO struct {
	Caption     string `json:"caption" binding:"required" validate:"min=1,max=255"`
	VideoURL    string `json:"videoURL" binding:"required,url"`
	CoverURL    string `json:"coverURL" binding:"required,url"`
	VideoWidth  int    `json:"videoWidth" binding:"required,gt=0"`
	VideoHeight int    `json:"videoHeight" binding:"required,gt=0"`
}

// SearchPostDTO 帖子搜索
type SearchPostDTO struct {
	Keyword  string `form:"keyword" binding:"required"`
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=10" binding:"min=1,max=50"`
}
