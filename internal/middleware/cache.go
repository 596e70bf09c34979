package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// StaticCache marks GET responses of static catalog endpoints
// (exercises, seasonings, eating-out presets) cacheable for maxAge
// seconds. Mutating methods always answer no-store.
func StaticCache(maxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
		c.Next()
	}
}
