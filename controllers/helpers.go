package controllers

import "github.com/gin-gonic/gin"

// currentUserID mengambil id user login dari context (diset AuthMiddleware).
func currentUserID(c *gin.Context) *uint {
	v, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
