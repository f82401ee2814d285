package consts

const (
	// PostViewBufferKey 帖子浏览量缓冲，hash: post_id -> 增量
	PostViewBufferKey = "inkwell:post:view_buffer"

	// UserFollowerCountKey 粉丝数缓存前缀
	UserFollowerCountKey = "inkwell:user:follower_count:"
)
