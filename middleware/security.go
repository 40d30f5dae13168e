package middleware

import (
	"net/http"

	"courtsync/utils"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter caps request bodies. Dashboard payloads are tiny
// (credentials, a toggle status, a decision id), so an oversized body is
// rejected up front and the reader is capped for chunked requests that
// carry no length.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			utils.TrackError("http", "request_too_large")
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, &utils.Response{
				Status: http.StatusRequestEntityTooLarge,
				Error:  "Request body too large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
