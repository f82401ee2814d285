package consts

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
)

const (
	CommentStatusApproved = "approved"
)

const (
	ContentSourceRemote   = "remote"
	ContentSourceTemplate = "template"
)

const (
	ImproveModeEnhance  = "enhance"
	ImproveModeExpand   = "expand"
	ImproveModeSimplify = "simplify"
)
