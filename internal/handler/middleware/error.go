package middleware

import (
	"log/slog"
	"net/http"

	"gin-auction-service/internal/handler/httperr"
	"gin-auction-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errs.New("missing bearer token")

const maxLoggedStackLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Server-side failures keep their cause and stack in the log only.
		for _, ginErr := range c.Errors {
			resp, ok := ginErr.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			slog.Error("request failed",
				"request_id", GetRequestID(c),
				"status", resp.Status,
				"error", ginErr.Err.Error(),
				"stack", errs.ExtractStackLines(ginErr.Err, maxLoggedStackLines))
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Code = httperr.Code(http.StatusInternalServerError)
	resp.Error.Message = "Internal server error"
	return resp
}
