package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims 身份服务签发的令牌内容，Subject 即外部用户标识
type IdentityClaims struct {
	jwt.RegisteredClaims
}

// ClerkID 外部身份标识
func (c *IdentityClaims) ClerkID() string {
	return c.Subject
}
