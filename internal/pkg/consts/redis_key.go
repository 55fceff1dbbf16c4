package consts

const (
	// UserFollowingKey 用户关注集合缓存 Set<followingId>
	UserFollowingKey = "quizfeed:following:"
)
