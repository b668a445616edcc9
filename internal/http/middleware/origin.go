// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements the cross-origin allow-list. Unlike header-stripping
// CORS implementations, a request declaring a disallowed Origin is rejected
// outright with a 403 CORS error and receives no Access-Control-Allow-Origin
// header. Requests without an Origin header (same-origin navigation, curl,
// health probes) are always allowed.
package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// allowedMethods is advertised to browsers for allowed origins.
const allowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// OriginAllowlist returns a Gin middleware enforcing the origin allow-list.
//
// Behavior:
//   - No Origin header: pass through untouched.
//   - Origin matches one of the patterns: echo it in
//     Access-Control-Allow-Origin, add Vary: Origin, advertise allowed
//     methods and credentials support, and short-circuit OPTIONS preflights
//     with 204.
//   - Otherwise: abort with 403 and the standard error envelope. The
//     response deliberately carries no CORS headers.
func OriginAllowlist(patterns []*regexp.Regexp) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		allowed := false
		for _, re := range patterns {
			if re.MatchString(origin) {
				allowed = true
				break
			}
		}
		if !allowed {
			LoggerFrom(c).Warn().Str("origin", origin).Msg("origin rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  false,
				"message": "Not allowed by CORS",
			})
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", allowedMethods)
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		h.Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
