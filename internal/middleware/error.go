package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	apperrors "autoledger/internal/errors"
	"autoledger/internal/logger"
)

// ErrorHandler answers errors attached with c.Error, and panics from later
// handlers, with a {success:false,message} body. Only the last attached
// error is reported. Anything that is not an AppError becomes the generic
// internal error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logFailure(c, "panic recovered", "panic", fmt.Sprint(rec))
				writeError(c, apperrors.ErrInternalServer)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			logFailure(c, "unhandled error", "error", err.Error())
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			logFailure(c, "request failed", "code", appErr.Code, "error", appErr.Internal.Error())
		}
		writeError(c, appErr)
	}
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	if c.Writer.Written() {
		return
	}
	body := gin.H{"success": false, "message": appErr.Message}
	if appErr.Detail != "" {
		body["error"] = appErr.Detail
	}
	c.AbortWithStatusJSON(appErr.StatusCode, body)
}

func logFailure(c *gin.Context, msg string, kv ...interface{}) {
	kv = append(kv,
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	logger.Get().Errorw(msg, kv...)
}
