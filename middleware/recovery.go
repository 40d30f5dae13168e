package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
)

func EnhancedRecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered on %s: %v", c.Request.URL.Path, err)
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
