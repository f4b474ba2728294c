package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/models"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

// HandleGetMe returns the authenticated user's profile.
func HandleGetMe(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := mongodb.GetUser(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching user", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Current user data", "user": user})
}

// HandleUpdateUser applies a profile update. Empty fields are ignored; a
// submitted password is stored as a bcrypt hash.
func HandleUpdateUser(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Country != "" {
		fields["country"] = req.Country
	}
	if req.State != "" {
		fields["state"] = req.State
	}
	if req.DOB != "" {
		fields["dob"] = req.DOB
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Get().Error("error hashing password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		fields["password"] = string(hash)
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No fields to update"})
		return
	}

	user, err := mongodb.UpdateUser(c.Request.Context(), claims.Subject, fields)
	if err != nil {
		logger.Get().Error("error updating user", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}
