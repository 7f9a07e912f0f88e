package middleware

import (
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"kakeibo/internal/logger"
)

// LANOnly creates a Gin middleware that rejects requests whose client IP is
// outside the given CIDR allowlist. Loopback is always allowed so local
// development works without configuration; an empty or fully invalid
// allowlist fails closed for everything else. Malformed subnets are logged
// and skipped at construction.
func LANOnly(subnets []string) gin.HandlerFunc {
	var nets []*net.IPNet
	for _, s := range subnets {
		_, n, err := net.ParseCIDR(s)
		if err != nil {
			logger.Get().Warnf("ignoring invalid LAN subnet %q: %v", s, err)
			continue
		}
		nets = append(nets, n)
	}

	return func(c *gin.Context) {
		ip := net.ParseIP(c.ClientIP())
		if ip == nil {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": gin.H{"code": "LAN_ONLY", "message": "Access restricted to the local network"}})
			return
		}

		if ip.IsLoopback() {
			c.Next()
			return
		}

		for _, n := range nets {
			if n.Contains(ip) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			gin.H{"error": gin.H{"code": "LAN_ONLY", "message": "Access restricted to the local network"}})
	}
}
