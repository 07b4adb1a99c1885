package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenRequired authenticates requests with a bearer token against the
// configured verifier. The verifier decides whether an absent token is
// acceptable, so local runs without a configured token still work.
func (s *Server) TokenRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header != "" {
			parts := strings.Fields(header)
			if len(parts) != 2 || parts[0] != "Bearer" {
				AbortWithError(c, ErrUnauthorized)
				return
			}
			token = parts[1]
		}

		if err := s.verifier.Verify(c.Request.Context(), token); err != nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		c.Next()
	}
}
