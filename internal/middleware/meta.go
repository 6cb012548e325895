package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/scholarship-portal-api/pkg/middleware/requestid"
)

const requestStartKey = "request_start"

// WithResponseMeta records when the request entered the gateway.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(requestStartKey, time.Now())
		c.Next()
	}
}

// ExtractMeta returns response metadata for the current request: elapsed
// processing time and request id.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	meta := map[string]interface{}{}
	if value, ok := c.Get(requestStartKey); ok {
		if start, ok := value.(time.Time); ok {
			meta["processing_time_ms"] = time.Since(start).Milliseconds()
		}
	}
	if id := requestid.Value(c); id != "" {
		meta["request_id"] = id
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}
