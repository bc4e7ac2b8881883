package middleware

import (
	"time"

	"github.com/anaarismendy/ReservasHoteles---Prueba-Tecnica/internal/observability"

	"github.com/gin-gonic/gin"
)

func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template keeps label cardinality bounded
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTP(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
