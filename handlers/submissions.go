package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wetopinie/middleware"
	"wetopinie/models"
	"wetopinie/services/submissions"
)

// SubmitClinicHandler accepts a new clinic proposal for moderation.
func SubmitClinicHandler(svc submissions.SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var item models.PendingClinic
		if err := c.ShouldBindJSON(&item); err != nil {
			logger.Error("Invalid clinic submission", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		item.SubmittedBy = middleware.UserEmail(c)

		saved, err := svc.SubmitClinic(c.Request.Context(), item)
		if err != nil {
			logger.Error("Failed to submit clinic", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// SubmitEditHandler accepts a field-level edit proposal for an existing clinic.
func SubmitEditHandler(svc submissions.SubmissionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var item models.PendingEdit
		if err := c.ShouldBindJSON(&item); err != nil {
			logger.Error("Invalid edit submission", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		item.ClinicID = c.Param("id")
		item.SubmittedBy = middleware.UserEmail(c)

		saved, err := svc.SubmitEdit(c.Request.Context(), item)
		if err != nil {
			logger.Error("Failed to submit edit", zap.String("clinicId", item.ClinicID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}
