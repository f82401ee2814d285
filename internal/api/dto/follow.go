package dto

// FollowStateDTO 关注状态
type FollowStateDTO struct {
	Following bool `json:"following"`
}

// LikeStateDTO 点赞状态
type LikeStateDTO struct {
	Liked bool `json:"liked"`
}

// FollowListDTO 关注/粉丝列表查询
type FollowListDTO struct {
	Limit  int `form:"limit,default=20" validate:"min=1,max=100"`
	Offset int `form:"offset,default=0" validate:"min=0"`
}
