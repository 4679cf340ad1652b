package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"analytics-srv/pkg/discord"
	"analytics-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	messageSuccess      = "Success"
	messageUnauthorized = "Unauthorized"
	messageInternal     = "Something went wrong"
)

// OK writes a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Created writes a 201 response with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Accepted writes a 202 response for work that continues asynchronously.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   messageUnauthorized,
	})
}

// Error writes err as a JSON error. HTTPError and ValidationErrors keep their
// status; anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErrs errors.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   "Invalid request",
			Errors:    validationErrs,
		})
		return
	}

	reportBug(c.Request.Context(), d, fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

// ErrorWithMap resolves err through mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	for target, httpErr := range mapping {
		if stderrors.Is(err, target) {
			Error(c, httpErr, d)
			return
		}
	}
	Error(c, err, d)
}

// PanicError writes a 500 for a recovered panic and reports the stack.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	reportBug(c.Request.Context(), d, fmt.Sprintf("panic: %v\n%s", recovered, debug.Stack()))
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   messageInternal,
	})
}

func reportBug(ctx context.Context, d discord.IDiscord, message string) {
	if d == nil {
		return
	}
	go func() {
		_ = d.ReportBug(context.WithoutCancel(ctx), message)
	}()
}
