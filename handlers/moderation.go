package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wetopinie/middleware"
	"wetopinie/models"
	"wetopinie/services/moderation"
	"wetopinie/utils"
)

// GetModerationQueuesHandler returns the three pending queues.
func GetModerationQueuesHandler(svc moderation.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		queues, err := svc.Queues(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load moderation queues", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load moderation queues", err.Error())
			return
		}
		c.JSON(http.StatusOK, queues)
	}
}

// ApproveSubmissionHandler promotes a pending item into the public dataset.
func ApproveSubmissionHandler(svc moderation.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		kind := models.SubmissionKind(c.Param("kind"))
		id := c.Param("id")
		reviewer := middleware.UserEmail(c)

		if err := svc.Approve(c.Request.Context(), kind, id, reviewer); err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, moderation.ErrUnknownKind), errors.Is(err, moderation.ErrMissingReference):
				status = http.StatusBadRequest
			case errors.Is(err, moderation.ErrNotFound):
				status = http.StatusNotFound
			}
			logger.Error("Approval failed",
				zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "approved"})
	}
}

// RejectSubmissionHandler discards a pending item.
func RejectSubmissionHandler(svc moderation.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		kind := models.SubmissionKind(c.Param("kind"))
		id := c.Param("id")
		reviewer := middleware.UserEmail(c)

		if err := svc.Reject(c.Request.Context(), kind, id, reviewer); err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, moderation.ErrUnknownKind):
				status = http.StatusBadRequest
			case errors.Is(err, moderation.ErrNotFound):
				status = http.StatusNotFound
			}
			logger.Error("Rejection failed",
				zap.String("kind", string(kind)), zap.String("id", id), zap.Error(err))
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "rejected"})
	}
}

// GetModerationLogHandler returns the audit log, newest first.
func GetModerationLogHandler(svc moderation.ModerationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		entries, err := svc.Log(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load moderation log", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to load moderation log", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}
