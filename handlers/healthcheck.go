package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckConnection reports the API as alive
func CheckConnection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "shopapi is running"})
}
