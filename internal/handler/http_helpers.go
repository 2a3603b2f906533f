package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// requestMeta captures the enrichment headers attached to persisted leads.
// Never used for authorization.
type requestMeta struct {
	IPAddress string
	UserAgent string
	Referrer  string
}

func extractMeta(c *gin.Context) requestMeta {
	ip := strings.TrimSpace(c.GetHeader("X-Forwarded-For"))
	if ip == "" {
		ip = strings.TrimSpace(c.GetHeader("X-Real-Ip"))
	}
	return requestMeta{
		IPAddress: ip,
		UserAgent: c.GetHeader("User-Agent"),
		Referrer:  c.GetHeader("Referer"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseLimitQuery(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
