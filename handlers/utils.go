package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedant-kerulkar07/Fin-View/models"
)

// currentUser pulls the claims the auth middleware attached. A miss means
// the route was wired without the middleware; respond 401 and abort.
func currentUser(c *gin.Context) (*models.AuthClaims, bool) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return nil, false
	}

	claims, ok := user.(*models.AuthClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid user claims"})
		return nil, false
	}
	return claims, true
}
