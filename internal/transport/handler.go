package transport

import (
	"context"
	"net/http"
	"time"

	"go-label-analyzer/internal/config"
	apperrors "go-label-analyzer/internal/errors"
	"go-label-analyzer/internal/logger"
	"go-label-analyzer/internal/service"
	"go-label-analyzer/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NewHandler(analysis service.LabelAnalysisService, cfg *config.Config) http.Handler {
	r := gin.Default()

	// Add middleware
	r.Use(
		corsMiddleware(),
		requestSizeLimiter(cfg.MaxRequestBodySize),
	)

	// Configure routes
	r.GET("/health", healthCheck)
	r.POST("/analyze-label", analyzeLabel(analysis, cfg))

	return r
}

func analyzeLabel(analysis service.LabelAnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"user_agent": c.Request.UserAgent(),
			"ip":         c.ClientIP(),
		}).Info("Processing label analysis request")

		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"ip": c.ClientIP(),
			}).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := analysis.AnalyzeLabel(ctx, req)
		if err != nil {
			statusCode := apperrors.GetStatusCode(err)
			logger.WithError(err).WithFields(logrus.Fields{
				"status_code": statusCode,
				"ip":          c.ClientIP(),
			}).Error("Label analysis failed")
			respondError(c, statusCode, err.Error())
			return
		}

		duration := time.Since(startTime)
		logger.WithFields(logrus.Fields{
			"status":             resp.Status,
			"photo_url":          resp.PhotoURL,
			"processing_time_ms": duration.Milliseconds(),
		}).Info("Label analysis completed")

		c.JSON(http.StatusOK, resp)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "available",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions

// corsMiddleware answers cross-origin preflight permissively; the header
// allow-list matches what the mobile client sends.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func respondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, models.ErrorResponse{Error: message})
}
