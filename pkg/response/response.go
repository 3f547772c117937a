package response

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Text writes a short plain-text message.
func Text(c *gin.Context, httpStatus int, message string) {
	c.Data(httpStatus, contentTypeText, []byte(message))
}

// Payload writes an opaque stored value unchanged with status 200. The
// content type is JSON when the bytes already are JSON, plain text otherwise.
func Payload(c *gin.Context, data []byte) {
	contentType := contentTypeText
	if json.Valid(data) {
		contentType = contentTypeJSON
	}
	c.Data(http.StatusOK, contentType, data)
}

func BadRequest(c *gin.Context, message string) {
	Text(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Text(c, http.StatusNotFound, message)
}

func ServiceUnavailable(c *gin.Context, message string) {
	Text(c, http.StatusServiceUnavailable, message)
}

func InternalError(c *gin.Context, message string) {
	Text(c, http.StatusInternalServerError, message)
}

// Status writes a small JSON health document.
func Status(c *gin.Context, httpStatus int, status string, err error) {
	resp := StatusResponse{Status: status}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(httpStatus, resp)
}
