package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ownerID reads the authenticated owner injected by the JWT middleware.
func ownerID(c *gin.Context) string {
	return c.GetString("userID")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
