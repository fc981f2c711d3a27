package v1

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

// requestContext lifts the identity set by the auth middleware out of gin's
// string-keyed store into a typed-key context, which is what the usecases
// check their ownership guards against.
func requestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if v := c.GetString(string(domain.KeyUserID)); v != "" {
		ctx = context.WithValue(ctx, domain.KeyUserID, v)
	}
	if v := c.GetString(string(domain.KeyUserEmail)); v != "" {
		ctx = context.WithValue(ctx, domain.KeyUserEmail, v)
	}
	if v := c.GetString(string(domain.KeyRequestID)); v != "" {
		ctx = context.WithValue(ctx, domain.KeyRequestID, v)
	}
	return ctx
}
