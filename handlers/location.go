package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

// HandleGetLocations serves the public country/state reference list.
func HandleGetLocations(c *gin.Context) {
	locations, err := mongodb.ListLocations(c.Request.Context())
	if err != nil {
		logger.Get().Error("error fetching locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"total":     len(locations),
		"countries": locations,
	})
}
