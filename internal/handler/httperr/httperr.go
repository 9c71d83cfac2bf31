package httperr

import (
	"net/http"
	"strings"

	"gin-auction-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns. Code is a stable
// snake_case form of the status for clients that switch on it.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the JSON body and records err on the context so the
// error middleware can log the cause with its stack.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = Code(status)
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Code turns 503 into "service_unavailable".
func Code(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "unknown"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
