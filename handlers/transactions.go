package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vedant-kerulkar07/Fin-View/csvimport"
	"github.com/vedant-kerulkar07/Fin-View/logger"
	"github.com/vedant-kerulkar07/Fin-View/models"
	"github.com/vedant-kerulkar07/Fin-View/mongodb"
)

// HandleUploadCsv ingests one statement upload: save the multipart file to
// a temp path, parse and validate the rows, insert one batch document. The
// temp file is removed whether or not the insert succeeds.
func HandleUploadCsv(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		logger.Get().Error("error creating upload dir", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	tmpPath := filepath.Join(uploadDir, uuid.NewString()+".csv")
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Get().Error("error saving upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logger.Get().Warn("failed to remove temp upload", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	f, err := os.Open(tmpPath)
	if err != nil {
		logger.Get().Error("error opening upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	defer f.Close()

	maxRows := csvimport.DefaultMaxRows
	if v := os.Getenv("CSV_MAX_ROWS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxRows = n
		}
	}

	result, err := csvimport.Parse(f, maxRows)
	if err != nil {
		if errors.Is(err, csvimport.ErrNoValidRows) || errors.Is(err, csvimport.ErrTooManyRows) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		logger.Get().Error("error parsing CSV", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Could not parse CSV file"})
		return
	}

	batch := &models.TransactionBatch{
		UploadedBy:   claims.Subject,
		Title:        file.Filename,
		Transactions: result.Transactions,
	}
	if batch.Title == "" {
		batch.Title = "CSV Upload"
	}

	if err := mongodb.CreateTransactionBatch(c.Request.Context(), batch); err != nil {
		logger.Get().Error("error storing transaction batch", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	logger.Get().Info("CSV uploaded",
		zap.String("user_id", claims.Subject),
		zap.Int("rows", len(result.Transactions)),
		zap.Int("skipped", result.Skipped))

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "CSV data uploaded & saved successfully",
		"totalRows": len(result.Transactions),
	})
}

// HandleGetCsvData returns the user's uploaded batches, newest first.
func HandleGetCsvData(c *gin.Context) {
	claims, ok := currentUser(c)
	if !ok {
		return
	}

	batches, err := mongodb.ListTransactionBatches(c.Request.Context(), claims.Subject)
	if err != nil {
		logger.Get().Error("error fetching transaction batches", zap.Error(err), zap.String("user_id", claims.Subject))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "CSV data fetched successfully",
		"data":    batches,
	})
}
