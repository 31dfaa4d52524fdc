package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wetopinie/middleware"
	"wetopinie/models"
	"wetopinie/services/reviews"
)

// GetClinicReviewsHandler returns the merged review feed for a clinic,
// approved reviews first with the caller's pending submissions alongside.
func GetClinicReviewsHandler(svc reviews.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)
		clinicID := c.Param("id")

		feed, err := svc.FeedForClinic(c.Request.Context(), clinicID, middleware.SessionID(c))
		if err != nil {
			logger.Error("Failed to load review feed", zap.String("clinicId", clinicID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
			return
		}
		c.JSON(http.StatusOK, feed)
	}
}

// SubmitReviewHandler accepts a review for moderation.
func SubmitReviewHandler(svc reviews.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var review models.PendingReview
		if err := c.ShouldBindJSON(&review); err != nil {
			logger.Error("Invalid review submission", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		review.ClinicID = c.Param("id")

		saved, err := svc.Submit(c.Request.Context(), middleware.SessionID(c), review)
		if err != nil {
			logger.Error("Failed to submit review", zap.String("clinicId", review.ClinicID), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}
