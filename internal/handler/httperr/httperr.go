package httperr

import (
	"github.com/gin-gonic/gin"
)

// requestIDKey matches the key the request logger stores the id under.
const requestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.RequestID = c.GetString(requestIDKey)
	return resp
}

// AbortWithError keeps err on the gin context for the request log and sends only msg to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
