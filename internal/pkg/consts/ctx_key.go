package consts

// gin 上下文键
const (
	CtxUserIDKey  = "ctx_user_id"
	CtxClerkIDKey = "ctx_clerk_id"
)
