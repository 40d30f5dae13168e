package handler

import (
	"io"

	"courtsync/model"
	"courtsync/usecase"

	"github.com/gin-gonic/gin"
)

// SSE endpoints are the push half of the live view: each connection
// subscribes to a collection feed and receives every snapshot until the
// client disconnects, which unsubscribes it.

func StreamCourtsHandler(c *gin.Context, feed *usecase.Feed[model.Court]) {
	streamSnapshots(c, feed)
}

func StreamActivityHandler(c *gin.Context, feed *usecase.Feed[model.Activity]) {
	streamSnapshots(c, feed)
}

func StreamRequestsHandler(c *gin.Context, feed *usecase.Feed[model.EventRequest]) {
	streamSnapshots(c, feed)
}

func streamSnapshots[T any](c *gin.Context, feed *usecase.Feed[T]) {
	ch, cancel := feed.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snapshot)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
